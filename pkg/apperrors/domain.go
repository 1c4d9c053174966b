package apperrors

import "net/http"

// Доменные ошибки приложения. Хендлеры отдают их клиенту как есть,
// сервисы возвращают вместо "сырых" ошибок репозиториев.

// --- users / auth ---

var (
	ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)

	ErrEmailAlreadyExists = New(CodeAlreadyExists, "user", "Email already registered", http.StatusConflict)

	ErrEmailPendingVerification = New(CodeAlreadyExists, "user",
		"A user with this email is already pending verification", http.StatusConflict)

	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid credentials", http.StatusBadRequest)

	ErrAccountNotActivated = New(CodeForbidden, "auth",
		"Account not activated. Please check your email for verification.", http.StatusForbidden)

	ErrWeakPassword = New(CodeValidationFailed, "auth",
		"Password must be at least 8 characters long", http.StatusBadRequest)

	ErrPasswordMismatch = New(CodeValidationFailed, "auth",
		"Passwords do not match", http.StatusBadRequest)

	ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusNotFound)

	ErrTokenExpired = New(CodeTokenExpired, "auth", "Verification token expired", http.StatusBadRequest)
)

// --- worker profiles ---

var (
	ErrWorkerProfileNotFound = New(CodeNotFound, "worker_profile",
		"Worker profile not found for this user", http.StatusNotFound)

	ErrPrimaryProfileNotFound = New(CodeNotFound, "worker_profile",
		"Primary worker profile not found", http.StatusNotFound)

	ErrDuplicateProfileName = New(CodeConflict, "worker_profile",
		"Profile name already exists for this user", http.StatusConflict)
)

// --- tags (skills / traits / experiences) ---

var (
	ErrTagNotFound = New(CodeNotFound, "tags", "Tag not found", http.StatusNotFound)

	ErrDuplicateTagAssociation = New(CodeConflict, "tags",
		"Tag is already associated with this profile", http.StatusConflict)
)

// --- messaging ---

var ErrNoMessagesFound = New(CodeNotFound, "messages", "No messages found", http.StatusNotFound)
