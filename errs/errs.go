package errs

type EquipeNotFoundError struct {
	Message string
}

func (e EquipeNotFoundError) Error() string {
	return e.Message
}

type JoueurNotFoundError struct {
	Message string
}

func (e JoueurNotFoundError) Error() string {
	return e.Message
}

type EquipeAlreadyExistsError struct {
	Message string
}

func (e EquipeAlreadyExistsError) Error() string {
	return e.Message
}

type JoueurAlreadyExistsError struct {
	Message string
}

func (e JoueurAlreadyExistsError) Error() string {
	return e.Message
}

type JoueurAlreadyAssignedError struct {
	Message string
}

func (e JoueurAlreadyAssignedError) Error() string {
	return e.Message
}

type JoueurNotInEquipeError struct {
	Message string
}

func (e JoueurNotInEquipeError) Error() string {
	return e.Message
}
