package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/travelhub/booking-backend-go/internal/models"
	"github.com/travelhub/booking-backend-go/internal/pricing"
	"github.com/travelhub/booking-backend-go/internal/spatial"
	"github.com/travelhub/booking-backend-go/internal/stats"
)

// BudgetBand is the admissible combined hotel+transport price range of a tier.
type BudgetBand struct {
	Min float64
	Max float64
}

// BudgetBandFor returns the fixed band of a budget tier.
func BudgetBandFor(tier string) (BudgetBand, bool) {
	switch tier {
	case models.BudgetLow:
		return BudgetBand{Min: 5000, Max: 15000}, true
	case models.BudgetMedium:
		return BudgetBand{Min: 15000, Max: 30000}, true
	case models.BudgetLuxury:
		return BudgetBand{Min: 30000, Max: 100000}, true
	}
	return BudgetBand{}, false
}

// Shares of the band ceiling each inventory category may consume
const (
	HotelBudgetShare  = 0.6
	FlightBudgetShare = 0.4
	TrainBudgetShare  = 0.3
	BusBudgetShare    = 0.2
)

// Ratings used when combining a hotel with a transport mode
const (
	DefaultHotelRating = 3.5
	FlightRating       = 4.2
	TrainRating        = 3.8
	BusRating          = 3.5
)

const (
	MaxSearchResults      = 20
	DefaultCandidateLimit = 50
	DefaultSearchTimeout  = 10 * time.Second

	MinSimulatedSavings = 0.05
	MaxSimulatedSavings = 0.15
)

// SavingsFunc returns the advertised savings for a combination priced at total.
type SavingsFunc func(total float64) float64

// SimulatedSavings advertises a random 5-15% of the combined price. The figure
// is a placeholder, not derived from any comparison pricing.
func SimulatedSavings(rng *rand.Rand) SavingsFunc {
	return func(total float64) float64 {
		pct := MinSimulatedSavings + rng.Float64()*(MaxSimulatedSavings-MinSimulatedSavings)
		return math.Round(total * pct)
	}
}

func newRequestSavings() SavingsFunc {
	return SimulatedSavings(rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())))
}

// PackageSearchEngine builds ranked hotel+transport combinations from inventory
type PackageSearchEngine struct {
	hotels  HotelStore
	flights FlightStore
	trains  TrainStore
	buses   BusStore
	cities  CityStore // optional, only feeds hotel distance metadata

	timeout        time.Duration
	candidateLimit int
	newSavings     func() SavingsFunc
}

// NewPackageSearchEngine creates a new search engine. cities may be nil.
func NewPackageSearchEngine(hotels HotelStore, flights FlightStore, trains TrainStore, buses BusStore, cities CityStore) *PackageSearchEngine {
	return &PackageSearchEngine{
		hotels:         hotels,
		flights:        flights,
		trains:         trains,
		buses:          buses,
		cities:         cities,
		timeout:        DefaultSearchTimeout,
		candidateLimit: DefaultCandidateLimit,
		newSavings:     newRequestSavings,
	}
}

// WithTimeout bounds a whole search call
func (e *PackageSearchEngine) WithTimeout(d time.Duration) *PackageSearchEngine {
	if d > 0 {
		e.timeout = d
	}
	return e
}

// WithCandidateLimit caps hotels and each transport mode before combinations
// are built. Only candidates that can still reach the band are counted.
func (e *PackageSearchEngine) WithCandidateLimit(n int) *PackageSearchEngine {
	if n > 0 {
		e.candidateLimit = n
	}
	return e
}

// WithSavings replaces the savings strategy. factory is called once per search.
func (e *PackageSearchEngine) WithSavings(factory func() SavingsFunc) *PackageSearchEngine {
	e.newSavings = factory
	return e
}

type searchParams struct {
	from, destination string
	start, end        time.Time
	nights            int
	travelers         int
	transport         string
	budget            string
	band              BudgetBand
}

func parseSearchQuery(q models.SearchQuery) (*searchParams, error) {
	p := &searchParams{
		from:        strings.TrimSpace(q.From),
		destination: strings.TrimSpace(q.Destination),
		travelers:   q.Travelers,
		transport:   strings.ToLower(strings.TrimSpace(q.Transport)),
		budget:      strings.ToLower(strings.TrimSpace(q.Budget)),
	}

	if p.from == "" {
		return nil, invalid("from", "is required")
	}
	if p.destination == "" {
		return nil, invalid("destination", "is required")
	}

	var err error
	if p.start, err = parseDate("startDate", q.StartDate); err != nil {
		return nil, err
	}
	if p.end, err = parseDate("endDate", q.EndDate); err != nil {
		return nil, err
	}
	if !p.end.After(p.start) {
		return nil, invalid("endDate", "must be after startDate")
	}
	p.nights = pricing.Nights(p.start, p.end)

	switch {
	case p.travelers == 0:
		p.travelers = 1
	case p.travelers < 0:
		return nil, invalid("travelers", "must be at least 1")
	}

	if p.transport == "" {
		p.transport = models.TransportAny
	}
	if p.transport != models.TransportAny && !models.IsValidTransportType(p.transport) {
		return nil, invalid("transport", "must be one of any, flight, train, bus")
	}

	if p.budget == "" {
		p.budget = models.BudgetMedium
	}
	band, ok := BudgetBandFor(p.budget)
	if !ok {
		return nil, invalid("budget", "must be one of budget, medium, luxury")
	}
	p.band = band

	return p, nil
}

func (p *searchParams) wants(mode string) bool {
	return p.transport == models.TransportAny || p.transport == mode
}

// categoryResult is written by exactly one fetch goroutine
type categoryResult struct {
	hotels     []models.HotelCandidate
	transports []models.TransportCandidate
	status     string
}

// SearchPackages returns the cheapest admissible hotel+transport combinations
// for the query, at most MaxSearchResults of them, plus the total found.
// A failing inventory store contributes no candidates instead of failing the search.
func (e *PackageSearchEngine) SearchPackages(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error) {
	p, err := parseSearchQuery(q)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var (
		hotelRes, flightRes, trainRes, busRes categoryResult
		city                                  *models.City
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hotelRes = e.fetchHotels(gctx, p)
		return nil
	})
	g.Go(func() error {
		flightRes = e.fetchFlights(gctx, p)
		return nil
	})
	g.Go(func() error {
		trainRes = e.fetchTrains(gctx, p)
		return nil
	})
	g.Go(func() error {
		busRes = e.fetchBuses(gctx, p)
		return nil
	})
	if e.cities != nil {
		g.Go(func() error {
			c, err := e.cities.FindByName(gctx, p.destination)
			if err != nil {
				log.Printf("search: city lookup for %q failed: %v", p.destination, err)
				return nil
			}
			city = c
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("package search: %w", err)
	}

	var transports []models.TransportCandidate
	transports = append(transports, flightRes.transports...)
	transports = append(transports, trainRes.transports...)
	transports = append(transports, busRes.transports...)

	hotels, transports := e.narrowCandidates(p.band, hotelRes.hotels, transports)
	combos := e.combine(p, hotels, transports, city)
	rankCombinations(combos)

	result := &models.SearchResult{
		Packages:   combos,
		TotalFound: len(combos),
		Sources: []models.SourceStatus{
			{Category: "hotel", Status: hotelRes.status, Candidates: len(hotelRes.hotels)},
			{Category: models.TransportFlight, Status: flightRes.status, Candidates: len(flightRes.transports)},
			{Category: models.TransportTrain, Status: trainRes.status, Candidates: len(trainRes.transports)},
			{Category: models.TransportBus, Status: busRes.status, Candidates: len(busRes.transports)},
		},
	}
	if len(combos) > 0 {
		prices := make([]float64, len(combos))
		for i, c := range combos {
			prices[i] = c.TotalPrice
		}
		lo, mid, hi := stats.Range(prices)
		result.PriceRange = &models.PriceRange{Min: lo, Median: mid, Max: hi}
	}
	if len(result.Packages) > MaxSearchResults {
		result.Packages = result.Packages[:MaxSearchResults]
	}
	return result, nil
}

func (e *PackageSearchEngine) fetchHotels(ctx context.Context, p *searchParams) categoryResult {
	maxNightly := HotelBudgetShare * p.band.Max / float64(p.nights)
	hotels, err := e.hotels.Search(ctx, models.HotelQuery{
		City:             p.destination,
		MaxPricePerNight: maxNightly,
	})
	if err != nil {
		log.Printf("search: hotel store unavailable: %v", err)
		return categoryResult{status: models.SourceFailed}
	}

	candidates := make([]models.HotelCandidate, 0, len(hotels))
	for _, h := range hotels {
		if h.CheapestPrice > maxNightly {
			continue
		}
		candidates = append(candidates, models.HotelCandidate{
			HotelID:       h.ID,
			Name:          h.Name,
			City:          h.City,
			PricePerNight: h.CheapestPrice,
			Nights:        p.nights,
			TotalPrice:    h.CheapestPrice * float64(p.nights),
			Rating:        h.Rating,
			Photos:        h.Photos,
			Lat:           h.Lat,
			Lon:           h.Lon,
		})
	}

	return categoryResult{hotels: candidates, status: models.SourceSucceeded}
}

func (e *PackageSearchEngine) fetchFlights(ctx context.Context, p *searchParams) categoryResult {
	if !p.wants(models.TransportFlight) {
		return categoryResult{status: models.SourceSkipped}
	}

	outbound, err := e.flights.Search(ctx, models.LegQuery{
		Origin: p.from, Destination: p.destination, Date: p.start.Format(DateLayout), MinSeats: p.travelers,
	})
	if err != nil {
		log.Printf("search: flight store unavailable: %v", err)
		return categoryResult{status: models.SourceFailed}
	}
	if len(outbound) == 0 {
		return categoryResult{status: models.SourceSucceeded}
	}

	returns, err := e.flights.Search(ctx, models.LegQuery{
		Origin: p.destination, Destination: p.from, Date: p.end.Format(DateLayout), MinSeats: p.travelers,
	})
	if err != nil {
		log.Printf("search: flight store unavailable for return leg: %v", err)
		return categoryResult{status: models.SourceFailed}
	}

	var back *models.Flight
	var backFare float64
	for i := range returns {
		if _, fare, ok := cheapestFlightFare(&returns[i]); ok && (back == nil || fare < backFare) {
			back, backFare = &returns[i], fare
		}
	}

	ceiling := FlightBudgetShare * p.band.Max
	var candidates []models.TransportCandidate
	for i := range outbound {
		out := &outbound[i]
		class, fare, ok := cheapestFlightFare(out)
		if !ok {
			continue
		}
		c := models.TransportCandidate{
			Type:            models.TransportFlight,
			LegIDs:          []int64{out.ID},
			CarrierName:     out.Airline,
			Class:           class,
			TotalPrice:      fare,
			DurationMinutes: out.DurationMinutes,
		}
		if back != nil {
			c.LegIDs = append(c.LegIDs, back.ID)
			c.TotalPrice += backFare
			c.DurationMinutes += back.DurationMinutes
			c.RoundTrip = true
			if back.Airline != out.Airline {
				c.CarrierName = out.Airline + " / " + back.Airline
			}
		}
		if c.TotalPrice > ceiling {
			continue
		}
		candidates = append(candidates, c)
	}

	return categoryResult{transports: candidates, status: models.SourceSucceeded}
}

func (e *PackageSearchEngine) fetchTrains(ctx context.Context, p *searchParams) categoryResult {
	if !p.wants(models.TransportTrain) {
		return categoryResult{status: models.SourceSkipped}
	}

	trains, err := e.trains.Search(ctx, models.LegQuery{
		Origin: p.from, Destination: p.destination, Date: p.start.Format(DateLayout), MinSeats: p.travelers,
	})
	if err != nil {
		log.Printf("search: train store unavailable: %v", err)
		return categoryResult{status: models.SourceFailed}
	}

	ceiling := TrainBudgetShare * p.band.Max
	var candidates []models.TransportCandidate
	for _, t := range trains {
		class, fare, ok := models.CheapestFare(t.Fares)
		if !ok || fare > ceiling {
			continue
		}
		candidates = append(candidates, models.TransportCandidate{
			Type:            models.TransportTrain,
			LegIDs:          []int64{t.ID},
			CarrierName:     strings.TrimSpace(t.Operator + " " + t.TrainNumber),
			Class:           class,
			TotalPrice:      fare,
			DurationMinutes: t.DurationMinutes,
		})
	}

	return categoryResult{transports: candidates, status: models.SourceSucceeded}
}

func (e *PackageSearchEngine) fetchBuses(ctx context.Context, p *searchParams) categoryResult {
	if !p.wants(models.TransportBus) {
		return categoryResult{status: models.SourceSkipped}
	}

	buses, err := e.buses.Search(ctx, models.LegQuery{
		Origin: p.from, Destination: p.destination, Date: p.start.Format(DateLayout), MinSeats: p.travelers,
	})
	if err != nil {
		log.Printf("search: bus store unavailable: %v", err)
		return categoryResult{status: models.SourceFailed}
	}

	ceiling := BusBudgetShare * p.band.Max
	var candidates []models.TransportCandidate
	for _, b := range buses {
		class, fare, ok := models.CheapestFare(b.Fares)
		if !ok || fare > ceiling {
			continue
		}
		candidates = append(candidates, models.TransportCandidate{
			Type:            models.TransportBus,
			LegIDs:          []int64{b.ID},
			CarrierName:     b.Operator,
			Class:           class,
			TotalPrice:      fare,
			DurationMinutes: b.DurationMinutes,
		})
	}

	return categoryResult{transports: candidates, status: models.SourceSucceeded}
}

// narrowCandidates drops hotels and transports that cannot land inside the band
// with any partner from the other side, then caps what is left cheapest first.
func (e *PackageSearchEngine) narrowCandidates(band BudgetBand, hotels []models.HotelCandidate, transports []models.TransportCandidate) ([]models.HotelCandidate, []models.TransportCandidate) {
	if len(hotels) == 0 || len(transports) == 0 {
		return nil, nil
	}

	hLo, hHi := hotels[0].TotalPrice, hotels[0].TotalPrice
	for _, h := range hotels[1:] {
		hLo = math.Min(hLo, h.TotalPrice)
		hHi = math.Max(hHi, h.TotalPrice)
	}
	tLo, tHi := transports[0].TotalPrice, transports[0].TotalPrice
	for _, t := range transports[1:] {
		tLo = math.Min(tLo, t.TotalPrice)
		tHi = math.Max(tHi, t.TotalPrice)
	}

	keptHotels := make([]models.HotelCandidate, 0, len(hotels))
	for _, h := range hotels {
		if h.TotalPrice+tHi >= band.Min && h.TotalPrice+tLo <= band.Max {
			keptHotels = append(keptHotels, h)
		}
	}
	sort.SliceStable(keptHotels, func(i, j int) bool {
		if keptHotels[i].TotalPrice != keptHotels[j].TotalPrice {
			return keptHotels[i].TotalPrice < keptHotels[j].TotalPrice
		}
		return hotelRating(keptHotels[i]) > hotelRating(keptHotels[j])
	})
	if len(keptHotels) > e.candidateLimit {
		keptHotels = keptHotels[:e.candidateLimit]
	}

	// per-mode cap so one mode cannot starve the others
	byMode := map[string][]models.TransportCandidate{}
	for _, t := range transports {
		if t.TotalPrice+hHi >= band.Min && t.TotalPrice+hLo <= band.Max {
			byMode[t.Type] = append(byMode[t.Type], t)
		}
	}
	var keptTransports []models.TransportCandidate
	for _, mode := range []string{models.TransportFlight, models.TransportTrain, models.TransportBus} {
		c := byMode[mode]
		sort.SliceStable(c, func(i, j int) bool { return c[i].TotalPrice < c[j].TotalPrice })
		if len(c) > e.candidateLimit {
			c = c[:e.candidateLimit]
		}
		keptTransports = append(keptTransports, c...)
	}
	return keptHotels, keptTransports
}

func cheapestFlightFare(f *models.Flight) (class string, fare float64, ok bool) {
	for _, c := range []string{models.ClassEconomy, models.ClassBusiness, models.ClassFirst} {
		if v, sold := f.FareFor(c); sold && (!ok || v < fare) {
			class, fare, ok = c, v, true
		}
	}
	return class, fare, ok
}

// combine forms the full hotel x transport cross product and keeps the pairs
// whose combined price lies inside the budget band
func (e *PackageSearchEngine) combine(p *searchParams, hotels []models.HotelCandidate, transports []models.TransportCandidate, city *models.City) []models.PackageCombination {
	savings := e.newSavings()
	combos := []models.PackageCombination{}

	for _, h := range hotels {
		var distance *float64
		if city != nil && spatial.ValidCoordinate(h.Lat, h.Lon) {
			d := spatial.DistanceKm(city.Lat, city.Lon, h.Lat, h.Lon)
			distance = &d
		}

		for _, t := range transports {
			total := h.TotalPrice + t.TotalPrice
			if total < p.band.Min || total > p.band.Max {
				continue
			}

			combos = append(combos, models.PackageCombination{
				ID:              combinationID(h, t),
				Title:           fmt.Sprintf("%d nights at %s, %s by %s", p.nights, h.Name, h.City, t.Type),
				Hotel:           h,
				Transport:       t,
				TotalPrice:      total,
				Savings:         savings(total),
				OverallRating:   overallRating(h, t.Type),
				PackageType:     packageType(total, p.band),
				Nights:          p.nights,
				Travelers:       p.travelers,
				HotelDistanceKm: distance,
			})
		}
	}
	return combos
}

// rankCombinations orders by price ascending, then rating descending
func rankCombinations(c []models.PackageCombination) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].TotalPrice != c[j].TotalPrice {
			return c[i].TotalPrice < c[j].TotalPrice
		}
		if c[i].OverallRating != c[j].OverallRating {
			return c[i].OverallRating > c[j].OverallRating
		}
		return c[i].ID < c[j].ID
	})
}

func hotelRating(h models.HotelCandidate) float64 {
	if h.Rating == nil {
		return DefaultHotelRating
	}
	return *h.Rating
}

func transportRating(mode string) float64 {
	switch mode {
	case models.TransportFlight:
		return FlightRating
	case models.TransportTrain:
		return TrainRating
	default:
		return BusRating
	}
}

func overallRating(h models.HotelCandidate, mode string) float64 {
	return math.Round((hotelRating(h)+transportRating(mode))/2*100) / 100
}

// packageType buckets a price by its position in the band: bottom 30% Value,
// next 40% Standard, top 30% Premium
func packageType(total float64, band BudgetBand) string {
	pos := (total - band.Min) / (band.Max - band.Min)
	switch {
	case pos < 0.3:
		return models.PackageTypeValue
	case pos < 0.7:
		return models.PackageTypeStandard
	default:
		return models.PackageTypePremium
	}
}

func combinationID(h models.HotelCandidate, t models.TransportCandidate) string {
	legs := make([]string, len(t.LegIDs))
	for i, id := range t.LegIDs {
		legs[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("h%d-%s-%s", h.HotelID, t.Type, strings.Join(legs, "-"))
}
