package chat

import (
	"fmt"

	"github.com/jonathan/reflection-insights/internal/sentiment"
	"github.com/jonathan/reflection-insights/internal/types"
)

// Turn is the outcome of one conversation exchange. The caller persists the
// recorded response and session advance; the flow itself holds no state.
type Turn struct {
	Reply           string
	Recorded        *types.Response
	NextIndex       int
	Completed       bool
	CurrentCategory types.ResponseCategory
	Progress        float64
}

// Opening returns the greeting message plus the first question
func (b *Bank) Opening() string {
	first := b.QuestionAt(0)
	if first == nil {
		return b.Closing
	}
	return b.Greeting + "\n\n" + first.Question
}

// HandleMessage processes one user message for a session: the message is
// recorded as the answer to the session's current category, acknowledged
// according to its sentiment, and the next question (or the closing
// message) is appended to the reply.
func (b *Bank) HandleMessage(session *types.Session, message string) (*Turn, error) {
	if session.Completed {
		return &Turn{
			Reply:     b.Closing,
			NextIndex: session.CategoryIndex,
			Completed: true,
			Progress:  1.0,
		}, nil
	}

	current := b.QuestionAt(session.CategoryIndex)
	if current == nil {
		return nil, fmt.Errorf("session %s has category index %d past the question bank", session.ID, session.CategoryIndex)
	}

	recorded := &types.Response{
		SessionID: session.ID,
		Category:  current.Category,
		Text:      message,
	}

	reply := current.acknowledgmentFor(sentiment.Score(message).Category)
	nextIndex := session.CategoryIndex + 1
	completed := nextIndex >= b.Len()

	if completed {
		reply += " " + b.Closing
	} else {
		reply += "\n\n" + b.QuestionAt(nextIndex).Question
	}

	turn := &Turn{
		Reply:     reply,
		Recorded:  recorded,
		NextIndex: nextIndex,
		Completed: completed,
		Progress:  float64(nextIndex) / float64(b.Len()),
	}
	if !completed {
		turn.CurrentCategory = b.QuestionAt(nextIndex).Category
	}
	return turn, nil
}
