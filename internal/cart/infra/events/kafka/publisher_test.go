package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
)

func TestPublish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]any
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got["cart_id"] != "c1" || got["product_id"] != float64(2) || got["amount"] != float64(3) {
			return errors.New("unexpected payload")
		}
		if _, ok := got["Type"]; ok {
			return errors.New("type must not be in the payload")
		}
		return nil
	})

	p := NewPublisher(producer, nil)
	err := p.Publish(context.Background(), domain.Event{
		Type: domain.EventItemUpdated, CartID: "c1", ProductID: 2, Amount: 3, At: at,
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisher(producer, nil)
	err := p.Publish(context.Background(), domain.Event{Type: domain.EventItemAdded, CartID: "c1", ProductID: 1, Amount: 1})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}
