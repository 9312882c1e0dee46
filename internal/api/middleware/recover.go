package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
)

// InternalServerErrorMessage is the only detail a client sees for a panic
// or any other unexpected failure.
const InternalServerErrorMessage = "Internal Server Error"

// Recoverer converts a panic in a downstream handler into a JSON 500
// response and logs the (redacted) panic value with the stack.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("recovered from panic in handler",
				"panic", redact.String(fmt.Sprint(rec)),
				"stack", redact.String(string(debug.Stack())),
				"method", r.Method,
				"path", r.URL.Path)

			shared.RespondWithError(w, r, http.StatusInternalServerError, InternalServerErrorMessage)
		}()

		next.ServeHTTP(w, r)
	})
}
