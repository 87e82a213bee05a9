package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/detailing-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/detailing-scheduler/internal/timezone"
)

type CatalogHandler struct {
	loc        *time.Location
	windowDays int
	now        func() time.Time
}

func NewCatalogHandler(loc *time.Location, windowDays int) *CatalogHandler {
	return &CatalogHandler{loc: loc, windowDays: windowDays, now: time.Now}
}

func (h *CatalogHandler) Packages(c *gin.Context) {
	httpresp.List(c, catalog.Packages())
}

func (h *CatalogHandler) Memberships(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"tiers":                   catalog.MembershipTiers(),
		"minimumCommitmentMonths": catalog.MinimumCommitmentMonths,
	})
}

// BookingDates lists the days the booking form may offer, starting today in
// the business location.
func (h *CatalogHandler) BookingDates(c *gin.Context) {
	httpresp.List(c, timezone.BookableDates(h.now().In(h.loc), h.windowDays))
}
