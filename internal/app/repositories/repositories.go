package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// DeletePolicy declares how an entity's Remove behaves. Soft-deleted rows
// stay queryable by raw id but are excluded from listings.
type DeletePolicy int

const (
	// DeleteHard removes the row entirely
	DeleteHard DeletePolicy = iota
	// DeleteSoft flips the entity's is_deleted flag
	DeleteSoft
)

// Repositories bundles every entity repository for dependency injection.
type Repositories struct {
	User        *UserRepository
	Vehicle     *VehicleRepository
	Transaction *TransactionRepository
	Location    *LocationRepository
	Podium      *PodiumRepository
	Region      *RegionRepository
	Role        *RoleRepository
	Status      *StatusRepository
	Survey      *SurveyRepository
	Assignment  *AssignmentRepository
	Report      *ReportRepository
}

// NewRepositories constructs all repositories over a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Vehicle:     NewVehicleRepository(db),
		Transaction: NewTransactionRepository(db),
		Location:    NewLocationRepository(db),
		Podium:      NewPodiumRepository(db),
		Region:      NewRegionRepository(db),
		Role:        NewRoleRepository(db),
		Status:      NewStatusRepository(db),
		Survey:      NewSurveyRepository(db),
		Assignment:  NewAssignmentRepository(db),
		Report:      NewReportRepository(db),
	}
}
