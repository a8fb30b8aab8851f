package tmdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a documented TMDB error: a status_code body returned with its
// matching HTTP status.
type APIError struct {
	Code    int
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) HTTPStatus() int {
	return e.Status
}

// Severe reports whether the error points at a problem with the service or
// its credentials rather than with the request.
func (e *APIError) Severe() bool {
	return errorCodes[e.Code].severe
}

// UnknownError is a non-200 response that does not match the TMDB error
// table. Code is zero when the body carried no status_code.
type UnknownError struct {
	Status int
	Code   int
}

func (e *UnknownError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("unknown status code: %d", e.Status)
	}
	return fmt.Sprintf("unknown tmdb error {status_code: %d, tmdb_code: %d}", e.Status, e.Code)
}

func (e *UnknownError) HTTPStatus() int {
	return e.Status
}

type errorCode struct {
	status  int
	message string
	severe  bool
}

var errorCodes = map[int]errorCode{
	1:  {http.StatusOK, "Success.", false},
	2:  {http.StatusNotImplemented, "Invalid service: this service does not exist.", true},
	3:  {http.StatusUnauthorized, "Authentication failed: You do not have permissions to access the service.", true},
	4:  {http.StatusMethodNotAllowed, "Invalid format: This service doesn't exist in that format.", true},
	5:  {http.StatusUnprocessableEntity, "Invalid parameters: Your request parameters are incorrect.", false},
	6:  {http.StatusNotFound, "Invalid id: The pre-requisite id is invalid or not found.", false},
	7:  {http.StatusUnauthorized, "Invalid API key: You must be granted a valid key.", true},
	8:  {http.StatusForbidden, "Duplicate entry: The data you tried to submit already exists.", false},
	9:  {http.StatusServiceUnavailable, "Service offline: This service is temporarily offline, try again later.", true},
	10: {http.StatusUnauthorized, "Suspended API key: Access to your account has been suspended, contact TMDB.", true},
	11: {http.StatusInternalServerError, "Internal error: Something went wrong, contact TMDB.", true},
	12: {http.StatusCreated, "The item/record was updated successfully.", false},
	13: {http.StatusOK, "The item/record was deleted successfully.", false},
	14: {http.StatusUnauthorized, "Authentication failed.", true},
	15: {http.StatusInternalServerError, "Failed.", false},
	16: {http.StatusUnauthorized, "Device denied.", true},
	17: {http.StatusUnauthorized, "Session denied.", true},
	18: {http.StatusBadRequest, "Validation failed.", false},
	19: {http.StatusNotAcceptable, "Invalid accept header.", true},
	20: {http.StatusUnprocessableEntity, "Invalid date range: Should be a range no longer than 14 days.", false},
	21: {http.StatusOK, "Entry not found: The item you are trying to edit cannot be found.", false},
	22: {http.StatusBadRequest, "Invalid page: Pages start at 1 and max at 500. They are expected to be an integer.", false},
	23: {http.StatusBadRequest, "Invalid date: Format needs to be YYYY-MM-DD.", false},
	24: {http.StatusGatewayTimeout, "Your request to the backend server timed out. Try again.", false},
	25: {http.StatusTooManyRequests, "Your request count (#) is over the allowed limit of (40).", false},
	26: {http.StatusBadRequest, "You must provide a username and password.", true},
	27: {http.StatusBadRequest, "Too many append to response objects: The maximum number of remote calls is 20.", false},
	28: {http.StatusBadRequest, "Invalid timezone: Please consult the documentation for a valid timezone.", false},
	29: {http.StatusBadRequest, "You must confirm this action: Please provide a confirm=true parameter.", false},
	30: {http.StatusUnauthorized, "Invalid username and/or password: You did not provide a valid login.", true},
	31: {http.StatusUnauthorized, "Account disabled: Your account is no longer active. Contact TMDB if this is an error.", true},
	32: {http.StatusUnauthorized, "Email not verified: Your email address has not been verified.", true},
	33: {http.StatusUnauthorized, "Invalid request token: The request token is either expired or invalid.", true},
	34: {http.StatusNotFound, "The resource you requested could not be found.", false},
	35: {http.StatusUnauthorized, "Invalid token.", true},
	36: {http.StatusUnauthorized, "This token hasn't been granted write permission by the user.", true},
	37: {http.StatusNotFound, "The requested session could not be found.", true},
	38: {http.StatusUnauthorized, "You don't have permission to edit this resource.", true},
	39: {http.StatusUnauthorized, "This resource is private.", true},
	40: {http.StatusOK, "Nothing to update.", false},
	41: {http.StatusUnprocessableEntity, "This request token hasn't been approved by the user.", true},
	42: {http.StatusMethodNotAllowed, "This request method is not supported for this resource.", true},
	43: {http.StatusBadGateway, "Couldn't connect to the backend server.", true},
	44: {http.StatusInternalServerError, "The ID is invalid.", false},
	45: {http.StatusForbidden, "This user has been suspended.", true},
	46: {http.StatusServiceUnavailable, "The API is undergoing maintenance. Try again later.", true},
	47: {http.StatusBadRequest, "The input is not valid.", false},
}

// knownStatus reports whether any table entry uses status.
func knownStatus(status int) bool {
	for _, c := range errorCodes {
		if c.status == status {
			return true
		}
	}
	return false
}

// lookupError matches a response status and TMDB code against the table.
func lookupError(status, code int) error {
	if c, ok := errorCodes[code]; ok && c.status == status {
		return &APIError{Code: code, Status: status, Message: c.message}
	}
	return &UnknownError{Status: status, Code: code}
}

func errorFromResponse(resp *http.Response) error {
	if !knownStatus(resp.StatusCode) {
		return &UnknownError{Status: resp.StatusCode}
	}

	var body struct {
		StatusCode int `json:"status_code"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || json.Unmarshal(data, &body) != nil || body.StatusCode == 0 {
		return &UnknownError{Status: resp.StatusCode}
	}

	return lookupError(resp.StatusCode, body.StatusCode)
}
