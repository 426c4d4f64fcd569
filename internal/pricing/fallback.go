package pricing

import "github.com/travelhub/booking-backend-go/internal/models"

// Fallback nightly hotel rates, used when a package does not configure a tier.
const (
	DefaultBudgetNightlyRate   = 1500.0
	DefaultStandardNightlyRate = 3000.0
	DefaultLuxuryNightlyRate   = 6000.0
)

// Fallback per-person, per-direction transport prices.
const (
	DefaultFlightPrice = 8000.0
	DefaultTrainPrice  = 2500.0
	DefaultBusPrice    = 1500.0

	DefaultFlightClass = "economy"
	DefaultTrainClass  = "3A"
	DefaultBusClass    = "ac"
)

// DefaultHotelOptions returns a fresh copy of the fallback hotel table.
func DefaultHotelOptions() map[string]models.HotelOption {
	return map[string]models.HotelOption{
		models.HotelBudget:   {PricePerNight: DefaultBudgetNightlyRate, Description: "Budget hotel"},
		models.HotelStandard: {PricePerNight: DefaultStandardNightlyRate, Description: "3-star hotel"},
		models.HotelLuxury:   {PricePerNight: DefaultLuxuryNightlyRate, Description: "5-star hotel"},
	}
}

// DefaultTransportOptions returns a fresh copy of the fallback transport table.
func DefaultTransportOptions() map[string]models.TransportOption {
	return map[string]models.TransportOption{
		models.TransportFlight: {Class: DefaultFlightClass, Price: DefaultFlightPrice},
		models.TransportTrain:  {Class: DefaultTrainClass, Price: DefaultTrainPrice},
		models.TransportBus:    {Class: DefaultBusClass, Price: DefaultBusPrice},
	}
}

// HotelRate resolves the nightly rate of category. A missing tier or a
// non-positive configured rate resolves to the fallback table.
func HotelRate(options map[string]models.HotelOption, category string) float64 {
	if opt, ok := options[category]; ok && opt.PricePerNight > 0 {
		return opt.PricePerNight
	}
	return DefaultHotelOptions()[category].PricePerNight
}

// TransportRate resolves the per-person, per-direction price of transportType.
// A configured option is used whether or not its class label matches class;
// otherwise the fallback price for the type applies, again ignoring class.
func TransportRate(options map[string]models.TransportOption, transportType, class string) float64 {
	if opt, ok := options[transportType]; ok && opt.Price > 0 {
		return opt.Price
	}
	return DefaultTransportOptions()[transportType].Price
}

// Options returns the package's option tables, substituting the fallback
// table for any table the package leaves empty.
func Options(pkg *models.Package) models.PackageOptions {
	opts := models.PackageOptions{
		PackageID:        pkg.ID,
		HotelOptions:     pkg.Pricing.HotelOptions,
		TransportOptions: pkg.Pricing.TransportOptions,
		AddOns:           pkg.Pricing.AddOns,
	}
	if len(opts.HotelOptions) == 0 {
		opts.HotelOptions = DefaultHotelOptions()
	}
	if len(opts.TransportOptions) == 0 {
		opts.TransportOptions = DefaultTransportOptions()
	}
	if opts.AddOns == nil {
		opts.AddOns = []models.AddOn{}
	}
	return opts
}
