package pagecache

// Op identifies what an engine did with a key during [Engine.LookupUpdate].
type Op uint8

const (
	// OpHit: the key was resident.
	OpHit Op = iota + 1
	// OpMiss: the key was not resident and its page was fetched.
	OpMiss
	// OpAdmit: the fetched page became resident.
	OpAdmit
	// OpEvict: a resident key was displaced to make room.
	OpEvict
	// OpBypass: the fetched page was not admitted.
	OpBypass
	// OpRetire: a resident key was dropped because it is never requested again.
	OpRetire
)

func (op Op) String() string {
	switch op {
	case OpHit:
		return "hit"
	case OpMiss:
		return "miss"
	case OpAdmit:
		return "admit"
	case OpEvict:
		return "evict"
	case OpBypass:
		return "bypass"
	case OpRetire:
		return "retire"
	default:
		return "unknown"
	}
}

type (
	// Event describes a single step taken by an engine.
	Event[Key comparable] struct {
		Op  Op
		Key Key
		// Resident is the resident count after the step.
		Resident int
	}
	// Observer receives diagnostic [Event]s.
	// Events carry no behavioral contract; they exist for logging and metrics.
	Observer[Key comparable] interface {
		Observe(Event[Key])
	}
	// ObserverFunc adapts a function to [Observer].
	ObserverFunc[Key comparable] func(Event[Key])

	// Option configures an engine at construction.
	Option[Key comparable] func(*settings[Key])

	settings[Key comparable] struct {
		observer Observer[Key]
	}
)

func (fn ObserverFunc[Key]) Observe(event Event[Key]) { fn(event) }

// WithObserver registers an observer that is called synchronously
// for every event the engine produces.
func WithObserver[Key comparable](observer Observer[Key]) Option[Key] {
	return func(s *settings[Key]) {
		s.observer = observer
	}
}

func makeSettings[Key comparable](options []Option[Key]) settings[Key] {
	var s settings[Key]
	for _, apply := range options {
		apply(&s)
	}
	return s
}

func (s *settings[Key]) emit(op Op, key Key, resident int) {
	if s.observer == nil {
		return
	}
	s.observer.Observe(Event[Key]{Op: op, Key: key, Resident: resident})
}
