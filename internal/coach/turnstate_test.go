package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce_FreshStageStartsIdle(t *testing.T) {
	s := Reduce(TurnState{}, StageEntered{})
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.False(t, s.Failed)
}

func TestReduce_CompletedStageStartsReady(t *testing.T) {
	s := Reduce(TurnState{}, StageEntered{AlreadyComplete: true})
	assert.Equal(t, PhaseReady, s.Phase)
}

func TestReduce_HappyTurnCycle(t *testing.T) {
	s := Reduce(TurnState{}, StageEntered{})
	s = Reduce(s, UserSubmitted{})
	assert.Equal(t, PhaseAwaitingModel, s.Phase)

	s = Reduce(s, ReplyReceived{})
	assert.Equal(t, PhaseIdle, s.Phase)
}

func TestReduce_CompleteReplyUnlocksAdvance(t *testing.T) {
	s := Reduce(TurnState{Phase: PhaseIdle}, UserSubmitted{})
	s = Reduce(s, ReplyReceived{StageComplete: true})
	assert.Equal(t, PhaseReady, s.Phase)
}

func TestReduce_ChattingFromReadyRevokesIt(t *testing.T) {
	s := TurnState{Phase: PhaseReady}
	s = Reduce(s, UserSubmitted{})
	assert.Equal(t, PhaseAwaitingModel, s.Phase)

	s = Reduce(s, ReplyReceived{StageComplete: false})
	assert.Equal(t, PhaseIdle, s.Phase, "a fresh incomplete reply withdraws the advance offer")
}

func TestReduce_FailureReturnsToIdleWithFlag(t *testing.T) {
	s := Reduce(TurnState{Phase: PhaseIdle}, UserSubmitted{})
	s = Reduce(s, TurnFailed{})
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.True(t, s.Failed)

	// The flag clears on the next submission.
	s = Reduce(s, UserSubmitted{})
	assert.False(t, s.Failed)
}

func TestReduce_IgnoresOutOfPhaseEvents(t *testing.T) {
	inFlight := TurnState{Phase: PhaseAwaitingModel}
	assert.Equal(t, inFlight, Reduce(inFlight, UserSubmitted{}), "input is disabled while a turn is in flight")

	idle := TurnState{Phase: PhaseIdle}
	assert.Equal(t, idle, Reduce(idle, ReplyReceived{StageComplete: true}), "a stray reply with no turn outstanding changes nothing")
	assert.Equal(t, idle, Reduce(idle, TurnFailed{}))
}
