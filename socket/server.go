package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"

	"spark_server/models"
)

// NewServer initializes the Socket.IO server for like acknowledgments. A
// browsing client joins the room named by its own user id; the like path
// emits the recorded/already_liked outcome there so the client can settle
// its optimistic heart.
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		s.Join(userID)
		log.Printf("👥 Socket %s joined room %s", s.ID(), userID)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Printf("❌ Socket error: %v", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return server
}

// Hub implements services.LikeAckEmitter over the socket server.
type Hub struct {
	Server *socketio.Server
}

// EmitLikeAck pushes a like outcome to the liker's room. Fire and forget:
// a liker with no open socket simply misses the ack, the REST response
// already carried the outcome.
func (h *Hub) EmitLikeAck(likerUserID, likedUserID string, outcome models.LikeOutcome) {
	h.Server.BroadcastToRoom("/", likerUserID, "likeAck", map[string]string{
		"likerUserId": likerUserID,
		"likedUserId": likedUserID,
		"outcome":     string(outcome),
	})
}
