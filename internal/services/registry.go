package services

// ServiceContainer holds every service the application wires at startup.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	SearchService      SearchService
	ApplicationService ApplicationService
	SavedJobService    SavedJobService
	CompanyService     CompanyService
}
