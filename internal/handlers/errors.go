package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
)

var businessMessages = map[string]string{
	"invalid_date":           "Invalid date.",
	"date_out_of_range":      "Date is outside the booking window.",
	"invalid_time_slot":      "Invalid time slot.",
	"outside_business_hours": "The service would run past closing time.",
	"unknown_package":        "Unknown package.",
	"invalid_email_domain":   "The e-mail domain does not look valid.",
	"invalid_frequency":      "Frequency must be monthly or weekly.",
	"terms_not_accepted":     "You must agree to the membership terms.",
	"time_conflict":          "This time slot is no longer available. Please choose another time.",
	"invalid_credentials":    "Invalid username or password.",
}

var businessStatus = map[string]int{
	"time_conflict":       http.StatusConflict,
	"invalid_credentials": http.StatusUnauthorized,
}

// writeError maps use-case errors onto HTTP. Anything that is not a business
// error is reported with the fallback code and a generic message.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		_ = c.Error(err)
		httperr.Internal(c, fallbackCode, fallbackMessage)
		return
	}

	status, found := businessStatus[code]
	if !found {
		status = http.StatusBadRequest
	}

	msg, found := businessMessages[code]
	if !found {
		msg = code
	}

	httperr.Write(c, status, code, msg)
}
