package coach

// Phase describes where a chat session is in its turn cycle. The chat
// view derives everything it enables from this: input is accepted in
// Idle and Ready, and the advance affordance is offered only in Ready.
type Phase string

const (
	// PhaseIdle means the coach is waiting for educator input and the
	// stage is not yet complete.
	PhaseIdle Phase = "idle"
	// PhaseAwaitingModel means a turn is in flight; input is disabled.
	PhaseAwaitingModel Phase = "awaiting_model"
	// PhaseReady means the latest successful reply flagged the stage
	// complete, so advancing is offered alongside further chat.
	PhaseReady Phase = "ready"
)

// TurnState is the reducible session state. Failed is sticky until the
// next submission so the view can show the apology styling.
type TurnState struct {
	Phase  Phase
	Failed bool
}

// TurnEvent is the closed set of inputs to Reduce.
type TurnEvent interface {
	isTurnEvent()
}

// StageEntered initializes the state when a chat session opens.
// AlreadyComplete carries whether the persisted transcript already
// ends in a stage-complete reply.
type StageEntered struct {
	AlreadyComplete bool
}

// UserSubmitted fires when the educator sends a message.
type UserSubmitted struct{}

// ReplyReceived fires when a model turn parses successfully.
type ReplyReceived struct {
	StageComplete bool
}

// TurnFailed fires when a model turn errors or returns unusable output.
type TurnFailed struct{}

func (StageEntered) isTurnEvent()  {}
func (UserSubmitted) isTurnEvent() {}
func (ReplyReceived) isTurnEvent() {}
func (TurnFailed) isTurnEvent()    {}

// Reduce is a pure transition function. Events that make no sense in
// the current phase (a submission while a turn is in flight, a reply
// with no turn outstanding) leave the state unchanged rather than
// corrupting it.
func Reduce(s TurnState, e TurnEvent) TurnState {
	switch ev := e.(type) {
	case StageEntered:
		if ev.AlreadyComplete {
			return TurnState{Phase: PhaseReady}
		}
		return TurnState{Phase: PhaseIdle}
	case UserSubmitted:
		if s.Phase == PhaseAwaitingModel {
			return s
		}
		return TurnState{Phase: PhaseAwaitingModel}
	case ReplyReceived:
		if s.Phase != PhaseAwaitingModel {
			return s
		}
		if ev.StageComplete {
			return TurnState{Phase: PhaseReady}
		}
		return TurnState{Phase: PhaseIdle}
	case TurnFailed:
		if s.Phase != PhaseAwaitingModel {
			return s
		}
		return TurnState{Phase: PhaseIdle, Failed: true}
	default:
		return s
	}
}
