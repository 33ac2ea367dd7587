package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"nutrifind/services"
)

// SearchWSController runs debounced search sessions over websockets. Each
// connection owns one SearchController: the client streams keystrokes as
// {"query": "..."} frames and receives result frames after the debounce
// window settles.
type SearchWSController struct {
	Searcher services.FoodSearcher
	Hub      *services.RealtimeHub
	Logger   *zap.Logger
	Debounce time.Duration
}

func NewSearchWSController(searcher services.FoodSearcher, hub *services.RealtimeHub, logger *zap.Logger, debounce time.Duration) *SearchWSController {
	return &SearchWSController{Searcher: searcher, Hub: hub, Logger: logger, Debounce: debounce}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

type queryFrame struct {
	Query string `json:"query"`
}

type resultFrame struct {
	Type    string         `json:"type"`
	Query   string         `json:"query"`
	Seq     uint64         `json:"seq"`
	Results []FoodResponse `json:"results"`
}

// GET /ws/search
func (sc *SearchWSController) SearchWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{ID: uuid.NewString(), UserID: uid, Conn: conn}
	sc.Hub.Register(cl)
	defer sc.Hub.Unregister(cl)

	ctrl := services.NewSearchController(sc.Searcher, sc.Logger, sc.Debounce, func(snap services.Snapshot) {
		frame := resultFrame{
			Type:    "results",
			Query:   snap.Query,
			Seq:     snap.Seq,
			Results: ToFoodResponses(snap.Results),
		}
		if err := cl.WriteJSON(frame); err != nil {
			sc.Logger.Debug("search session write failed",
				zap.String("session", cl.ID), zap.Error(err))
		}
	})
	defer ctrl.Close()

	// ping to keep connections alive through some proxies
	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := cl.Ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		var frame queryFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		ctrl.SetQuery(frame.Query)
	}
}
