package services

import (
	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/repositories"
	"github.com/parkpilot/parkpilot/internal/db"
	"github.com/parkpilot/parkpilot/internal/pkg/auth"
)

// Services bundles every business service for dependency injection.
type Services struct {
	Auth        *AuthService
	User        *UserService
	Vehicle     *VehicleService
	Transaction *TransactionService
	Location    *LocationService
	Podium      *PodiumService
	Region      *RegionService
	Role        *RoleService
	Status      *StatusService
	Survey      *SurveyService
	Assignment  *AssignmentService
	Report      *ReportService
}

// NewServices constructs all services over the shared repository set.
func NewServices(
	repos *repositories.Repositories,
	database *db.PostgresDB,
	jwtService *auth.JWTService,
	hasher *auth.PasswordHasher,
	logger zerolog.Logger,
) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, repos.Podium, jwtService, hasher, logger),
		User:        NewUserService(repos.User, hasher, logger),
		Vehicle:     NewVehicleService(repos.Vehicle, logger),
		Transaction: NewTransactionService(repos.Transaction, repos.User, database, logger),
		Location:    NewLocationService(repos.Location, logger),
		Podium:      NewPodiumService(repos.Podium, logger),
		Region:      NewRegionService(repos.Region, logger),
		Role:        NewRoleService(repos.Role, logger),
		Status:      NewStatusService(repos.Status, logger),
		Survey:      NewSurveyService(repos.Survey, logger),
		Assignment:  NewAssignmentService(repos.Assignment, logger),
		Report:      NewReportService(repos.Report, repos.Assignment, logger),
	}
}
