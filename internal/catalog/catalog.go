// Package catalog wires the bookable inventory: flights, hotels, cars and
// travel packages. All four share the same repository, service and handler
// machinery; this file pins their collections, route prefixes and display
// names.
package catalog

import (
	"voyago/internal/auth"
	"voyago/internal/catalog/handler"
	"voyago/internal/catalog/repository"
	"voyago/internal/catalog/service"
	"voyago/internal/catalog/validator"
	"voyago/pkg/config"
	"voyago/pkg/contracts"
	"voyago/pkg/model"
)

const (
	FlightsCollection        = "Flights"
	HotelsCollection         = "Hotels"
	CarsCollection           = "Cars"
	TravelPackagesCollection = "TravelPackages"
)

// Handlers builds the HTTP surface for every catalog collection.
func Handlers(cfg *config.Config, gate *auth.Gate) []contracts.Handler {
	v := validator.NewResourceValidator()

	flights := service.NewResourceService[model.Flight](
		"Flight",
		repository.NewMongoResourceRepository[model.Flight, *model.Flight](cfg, FlightsCollection),
		v,
		cfg,
	)
	hotels := service.NewResourceService[model.Hotel](
		"Hotel",
		repository.NewMongoResourceRepository[model.Hotel, *model.Hotel](cfg, HotelsCollection),
		v,
		cfg,
	)
	cars := service.NewResourceService[model.Car](
		"Car",
		repository.NewMongoResourceRepository[model.Car, *model.Car](cfg, CarsCollection),
		v,
		cfg,
	)
	packages := service.NewResourceService[model.TravelPackage](
		"Travel package",
		repository.NewMongoResourceRepository[model.TravelPackage, *model.TravelPackage](cfg, TravelPackagesCollection),
		v,
		cfg,
	)

	return []contracts.Handler{
		handler.NewResourceHandler[model.Flight, *model.Flight, model.FlightUpdate](
			"Flight", "/api/flights", flights, gate, cfg.Log,
		),
		handler.NewResourceHandler[model.Hotel, *model.Hotel, model.HotelUpdate](
			"Hotel", "/api/hotels", hotels, gate, cfg.Log,
		),
		handler.NewResourceHandler[model.Car, *model.Car, model.CarUpdate](
			"Car", "/api/cars", cars, gate, cfg.Log,
		),
		handler.NewResourceHandler[model.TravelPackage, *model.TravelPackage, model.TravelPackageUpdate](
			"Travel package", "/api/packages", packages, gate, cfg.Log,
		),
	}
}
