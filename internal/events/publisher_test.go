package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaEventPublisher_PublishesEnvelope(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	defer pubSub.Close()

	publisher := newKafkaEventPublisher(pubSub, "casm83.sessions", testLogger())

	session := &models.TestSession{ID: "5f0c", Sex: models.SexFemenino, CreatedAt: time.Now()}
	event := NewSessionStartedEvent(session)
	require.NoError(t, publisher.PublishSessionEvent(context.Background(), event))

	messages, err := pubSub.Subscribe(context.Background(), "casm83.sessions")
	require.NoError(t, err)

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, "session.started", msg.Metadata.Get("event_type"))
		assert.Equal(t, "casm83-service", msg.Metadata.Get("source"))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
		assert.Equal(t, "session.started", decoded["type"])
		data := decoded["data"].(map[string]interface{})
		assert.Equal(t, "5f0c", data["session_id"])
		assert.Equal(t, "femenino", data["sex"])
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered")
	}
}

func TestSessionCompletedEvent_TopScalesInOrder(t *testing.T) {
	profile := &models.Profile{
		Sex:               models.SexMasculino,
		AnsweredQuestions: 120,
		Recommendations: models.Recommendations{
			TopScales: []models.Recommendation{{Scale: models.ScaleARTE}, {Scale: models.ScaleCCFM}},
		},
	}

	event := NewSessionCompletedEvent("abc", time.Now(), profile)
	assert.Equal(t, EventSessionCompleted, event.Type)
	assert.NotEmpty(t, event.ID)

	data, ok := event.Data.(SessionCompletedEvent)
	require.True(t, ok)
	assert.Equal(t, []models.ScaleCode{models.ScaleARTE, models.ScaleCCFM}, data.TopScales)
	assert.Equal(t, 120, data.AnsweredQuestions)

	body, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"top_scales":["ARTE","CCFM"]`)
}

func TestMockEventPublisher(t *testing.T) {
	mock := NewMockEventPublisher(testLogger())

	require.NoError(t, mock.PublishSessionEvent(context.Background(), NewResponseSavedEvent("abc", 3, []string{"A"}, 1)))
	require.NoError(t, mock.PublishSessionEvent(context.Background(), NewResponseSavedEvent("abc", 4, []string{}, 2)))

	published := mock.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, EventSessionResponseSaved, published[0].Type)
	assert.NotEqual(t, published[0].ID, published[1].ID)

	mock.ClearEvents()
	assert.Empty(t, mock.GetPublishedEvents())
	assert.NoError(t, mock.Close())
}
