package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"eventbook/shared/constant"
	"eventbook/shared/failure"
	"eventbook/shared/logger"
)

type Message struct {
	Message string `json:"message"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	WithJSON(writer, code, Message{Message: message})
}

// WithJSON sends payload as the JSON body
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	write(writer, code, constant.ContentTypeJSON, body)
}

// WithError sends {"message": ...}. Internal failures never leak their cause.
func WithError(writer http.ResponseWriter, err error) {
	WithMessage(writer, failure.GetCode(err), failure.Message(err))
}

// WithText sends a plain text body
func WithText(writer http.ResponseWriter, code int, text string) {
	write(writer, code, constant.ContentTypeText, []byte(text))
}

// WithTextError is WithError for pages that expect plain text
func WithTextError(writer http.ResponseWriter, err error) {
	WithText(writer, failure.GetCode(err), failure.Message(err))
}

// WithHTML sends an already rendered page
func WithHTML(writer http.ResponseWriter, code int, page []byte) {
	write(writer, code, constant.ContentTypeHTML, page)
}

// WithAttachment sends content as a file download
func WithAttachment(writer http.ResponseWriter, contentType, fileName string, content []byte) {
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
	write(writer, http.StatusOK, contentType, content)
}

// WithRedirect sends a 302 to location
func WithRedirect(writer http.ResponseWriter, request *http.Request, location string) {
	http.Redirect(writer, request, location, http.StatusFound)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
