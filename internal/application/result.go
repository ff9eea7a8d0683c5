package application

// Kind classifies the outcome of an application workflow.
type Kind string

const (
	KindOK                    Kind = "ok"
	KindNotAuthenticated      Kind = "not_authenticated"
	KindAlreadyAssigned       Kind = "already_assigned"
	KindRoomNotFound          Kind = "room_not_found"
	KindNoVacancy             Kind = "no_vacancy"
	KindProfileIncomplete     Kind = "profile_incomplete"
	KindGenderMismatch        Kind = "gender_mismatch"
	KindOccupantNotFound      Kind = "occupant_not_found"
	KindPartialFailure        Kind = "partial_failure"
	KindRemoteOperationFailed Kind = "remote_operation_failed"
)

// Result is the only value a workflow returns to its caller. Failures never
// propagate as errors past the workflow boundary; callers must treat
// Success=false as non-fatal and display Message.
type Result struct {
	Success bool   `json:"success"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func ok(message string) Result {
	return Result{Success: true, Kind: KindOK, Message: message}
}

func fail(kind Kind, message string) Result {
	return Result{Success: false, Kind: kind, Message: message}
}
