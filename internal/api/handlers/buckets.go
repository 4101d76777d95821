package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thumbert/bust-sub001/internal/api/models"
	"github.com/thumbert/bust-sub001/internal/bucket"
)

// ListBuckets handles GET /api/v1/buckets
func ListBuckets(c *gin.Context) {
	buckets := make([]models.BucketInfo, 0, len(bucket.All()))
	for _, b := range bucket.All() {
		aliases := b.Aliases()
		if aliases == nil {
			aliases = []string{}
		}
		buckets = append(buckets, models.BucketInfo{
			Name:         b.String(),
			Aliases:      aliases,
			Region:       b.Region(),
			Description:  b.Description(),
			UsesHolidays: b.UsesHolidays(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"buckets": buckets})
}
