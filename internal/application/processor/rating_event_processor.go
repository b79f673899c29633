package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"habitat-api/internal/domain/model"
	"habitat-api/internal/domain/usecase/rating"
	"habitat-api/pkg/location"
	"habitat-api/pkg/log"
	"habitat-api/pkg/metrics"
	"habitat-api/pkg/msg"
	"habitat-api/pkg/sqs"
)

// RatingEventProcessor recomputes the cached summary of the neighborhood named by each rating event.
type RatingEventProcessor struct {
	ratingUseCase rating.UseCase
}

var _ sqs.Handler = (*RatingEventProcessor)(nil)

func NewRatingEventProcessor(ratingUseCase rating.UseCase) *RatingEventProcessor {
	return &RatingEventProcessor{
		ratingUseCase: ratingUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface. Malformed events and events naming a
// neighborhood that is no longer in the hierarchy are discarded; refresh failures are
// returned so the message is redelivered.
func (p *RatingEventProcessor) HandleMessage(ctx context.Context, message types.Message) error {
	messageID := aws.ToString(message.MessageId)

	var event model.RatingEvent
	if err := json.Unmarshal([]byte(aws.ToString(message.Body)), &event); err != nil {
		metrics.RatingEventsTotal.WithLabelValues("in", "discarded").Inc()
		log.Warnw(msg.GetMessage("queue.process.invalid", err), "message_id", messageID)
		return nil
	}

	key, ok := location.RatingKey(event.Neighborhood, event.City)
	if !ok {
		metrics.RatingEventsTotal.WithLabelValues("in", "discarded").Inc()
		log.Warnw(msg.GetMessage("queue.process.invalid", location.FormatDisplayName(event.Neighborhood, event.District, event.City)),
			"message_id", messageID)
		return nil
	}

	if _, err := p.ratingUseCase.RefreshSummary(ctx, key); err != nil {
		metrics.RatingEventsTotal.WithLabelValues("in", "error").Inc()
		log.Errorw(msg.GetMessage("queue.process.error", event.RatingID, err), "message_id", messageID)
		return fmt.Errorf("refresh summary of %s: %w", key.DisplayName(), err)
	}

	metrics.RatingEventsTotal.WithLabelValues("in", "ok").Inc()
	log.Debugw(msg.GetMessage("rating.summary.refreshed", key.DisplayName()), "message_id", messageID, "rating_id", event.RatingID)
	return nil
}
