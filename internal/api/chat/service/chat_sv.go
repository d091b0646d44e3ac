package chatService

import (
	"EcommerceChatbot/internal/api/chat"
	"EcommerceChatbot/internal/dataset"
	contextPkg "EcommerceChatbot/pkg/context"
	"EcommerceChatbot/pkg/metrics"
	"EcommerceChatbot/pkg/nlp"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

const cacheKeyFormat = "chat:answer:%s:%s"

func (s *chatService) Answer(ctx context.Context, message string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := ctx.Err(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Request ended before the message was answered")
		return "", chat.ErrAnswerUnavailable
	}

	text := nlp.Normalize(message)
	if text == "" {
		return "", chat.ErrEmptyMessage
	}

	// Answers are only cached once loading has finished, so a "still loading"
	// reply never outlives the load.
	generation := s.repo.Generation()
	useCache := s.cache != nil && generation != ""
	key := fmt.Sprintf(cacheKeyFormat, generation, text)

	if useCache {
		cached, ok, err := s.cache.GetAnswer(ctx, key)
		switch {
		case err != nil:
			metrics.ChatAnswerCache.WithLabelValues("error").Inc()
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Answer cache lookup failed")
		case ok:
			metrics.ChatAnswerCache.WithLabelValues("hit").Inc()
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug("Answer served from cache")
			return cached, nil
		default:
			metrics.ChatAnswerCache.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()
	result := s.engine.Resolve(text)
	elapsed := time.Since(start)

	metrics.ChatQueries.WithLabelValues(string(result.Intent), string(result.Outcome)).Inc()
	metrics.ChatQueryDuration.WithLabelValues(string(result.Intent)).Observe(elapsed.Seconds())

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     result.Intent,
		"outcome":    result.Outcome,
		"elapsed_us": elapsed.Microseconds(),
	}).Debug("Message answered")

	if useCache && result.Outcome != OutcomeNotReady {
		if err := s.cache.SetAnswer(ctx, key, result.Text, s.cacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache answer")
		}
	}

	return result.Text, nil
}

func (s *chatService) Classify(ctx context.Context, message string) (chat.ClassifyResponse, error) {
	if ctx.Err() != nil {
		return chat.ClassifyResponse{}, chat.ErrAnswerUnavailable
	}
	if nlp.Normalize(message) == "" {
		return chat.ClassifyResponse{}, chat.ErrEmptyMessage
	}

	c := s.engine.Classify(message)

	return chat.ClassifyResponse{
		Intent:  string(c.Intent),
		OrderID: c.Params.OrderID,
		Count:   c.Params.Count,
		Query:   c.Params.Query,
		Matched: c.Matched,
	}, nil
}

func (s *chatService) Status(_ context.Context) chat.StatusResponse {
	stats := s.repo.Stats()
	generation := s.repo.Generation()

	resp := chat.StatusResponse{
		Ready:      generation != "",
		Generation: generation,
		Tables:     make([]chat.TableStatus, 0, len(dataset.LoadOrder)),
	}
	for _, table := range dataset.LoadOrder {
		rows := stats[table]
		resp.Tables = append(resp.Tables, chat.TableStatus{
			Name:   string(table),
			Rows:   rows,
			Loaded: rows > 0,
		})
	}

	return resp
}
