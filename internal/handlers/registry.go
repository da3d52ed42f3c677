package handlers

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	SearchHandler      *SearchHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	SavedJobHandler    *SavedJobHandler
	CompanyHandler     *CompanyHandler
}
