// controllers/stream_controller.go
package controllers

import (
	"io"
	"net/http"

	"go-postgres-pos/realtime"

	"github.com/gin-gonic/gin"
)

var streamTopics = map[string]bool{
	realtime.TopicProducts:  true,
	realtime.TopicCustomers: true,
	realtime.TopicSales:     true,
	realtime.TopicSavings:   true,
}

// StreamTopic mengalirkan event satu topik lewat SSE. Koneksi putus =
// subscription dilepas. View yang didapat eventually consistent: event lama
// boleh terlewat kalau client lambat, urutan tidak pernah mundur.
func StreamTopic(c *gin.Context) {
	topic := c.Param("topic")
	if !streamTopics[topic] {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topik tidak dikenal"})
		return
	}

	ch, cancel := realtime.Default.Subscribe(topic)
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Action, ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
