package handlers

// AppHandlers - все хендлеры приложения для регистрации маршрутов.
type AppHandlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	WorkerProfile *WorkerProfileHandler
	Tag           *TagHandler
	Message       *MessageHandler
	Search        *SearchHandler
}
