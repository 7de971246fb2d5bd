package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"freight/internal/adapters/out/geo"
	"freight/internal/adapters/out/payments"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   *geo.Client
	payments   *payments.Client
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	geocoder, err := geo.NewClient(configs.GeocoderBaseURL, configs.GeocoderAPIKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	paymentGateway, err := payments.NewClient(configs.PaymentsBaseURL, configs.PaymentsAPIKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geocoder,
		payments:   paymentGateway,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.geocoder, c.logger)
}

func (c *CompositionRoot) CreateSubmitQuoteCommandHandler() commands.SubmitQuoteCommandHandler {
	var f commands.SubmitQuoteUoWFactory = FuncSubmitQuoteUoWFactory(func() commands.SubmitQuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitQuoteCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptQuoteCommandHandler() commands.AcceptQuoteCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptQuoteCommandHandler(f, c.payments)
}

func (c *CompositionRoot) CreateRejectQuoteCommandHandler() commands.RejectQuoteCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectQuoteCommandHandler(f)
}

func (c *CompositionRoot) CreateStartTripCommandHandler() commands.StartTripCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartTripCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteTripCommandHandler() commands.CompleteTripCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteTripCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireQuotesCommandHandler() commands.ExpireQuotesCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireQuotesCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterProfileCommandHandler() commands.RegisterProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateAwaitProfileCommandHandler() commands.AwaitProfileCommandHandler {
	// The wait polls outside any transaction; a zero timeout picks the default.
	return commands.NewAwaitProfileCommandHandler(c.uowFactory.Create().ProfileRepository(), 0)
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateRateCarrierCommandHandler() commands.RateCarrierCommandHandler {
	var f commands.ScoringUoWFactory = FuncScoringUoWFactory(func() commands.ScoringUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOpenShipmentsQueryHandler() queries.GetOpenShipmentsQueryHandler {
	return queries.NewGetOpenShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsByOwnerQueryHandler() queries.GetShipmentsByOwnerQueryHandler {
	return queries.NewGetShipmentsByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQuotesForShipmentQueryHandler() queries.GetQuotesForShipmentQueryHandler {
	return queries.NewGetQuotesForShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQuotesByCarrierQueryHandler() queries.GetQuotesByCarrierQueryHandler {
	return queries.NewGetQuotesByCarrierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierScoreQueryHandler() queries.GetCarrierScoreQueryHandler {
	return queries.NewGetCarrierScoreQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncSubmitQuoteUoWFactory func() commands.SubmitQuoteUoW

func (f FuncSubmitQuoteUoWFactory) Create() commands.SubmitQuoteUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncScoringUoWFactory func() commands.ScoringUoW

func (f FuncScoringUoWFactory) Create() commands.ScoringUoW {
	return f()
}
