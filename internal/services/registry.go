package services

// ServiceContainer - все сервисы приложения для передачи в хендлеры.
type ServiceContainer struct {
	Auth          AuthService
	User          UserService
	WorkerProfile WorkerProfileService
	Tag           TagService
	Message       MessageService
	Search        SearchService
}
