package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/model"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/store"
)

// Workflow implements the room application and inmate removal sequences.
// The caller resolves identity; the workflow never consults ambient session
// state.
type Workflow struct {
	store store.Store
}

// NewWorkflow creates a workflow backed by the given store.
func NewWorkflow(s store.Store) *Workflow {
	return &Workflow{store: s}
}

// Apply moves a user from unassigned to assigned to the given room. The
// checks and the three writes (occupant insert, vacancy decrement, user
// update) run in one transaction, so a failure at any step leaves no partial
// state. The vacancy decrement is conditional on vacancies > 0, which also
// arbitrates concurrent applicants to the same room.
func (w *Workflow) Apply(ctx context.Context, userID, hostelID, roomID string) Result {
	if userID == "" {
		return fail(KindNotAuthenticated, "You must be logged in to apply.")
	}

	var result Result
	err := w.store.Transaction(ctx, func(tx store.Store) error {
		// A user may hold at most one active assignment.
		_, err := tx.GetOccupantByUser(ctx, userID)
		switch {
		case err == nil:
			result = fail(KindAlreadyAssigned, "You are already assigned to a hostel.")
			return errRolledBack
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("check existing occupancy: %w", err)
		}

		room, err := tx.GetRoomInHostel(ctx, roomID, hostelID)
		if errors.Is(err, store.ErrNotFound) {
			result = fail(KindRoomNotFound, "Room not found in this hostel.")
			return errRolledBack
		}
		if err != nil {
			return fmt.Errorf("look up room: %w", err)
		}
		if room.Vacancies <= 0 {
			result = fail(KindNoVacancy, "No vacancies available in this room.")
			return errRolledBack
		}

		user, err := tx.GetUserByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			result = fail(KindProfileIncomplete, "User profile not found. Please complete your profile.")
			return errRolledBack
		}
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}
		if user.Gender == "" {
			result = fail(KindProfileIncomplete, "User profile not found. Please complete your profile.")
			return errRolledBack
		}

		hostel, err := tx.GetHostel(ctx, hostelID)
		if err != nil {
			return fmt.Errorf("look up hostel: %w", err)
		}
		// Exact string match; only the stored value "Co-ed" admits any gender.
		if hostel.Gender != model.GenderCoed && hostel.Gender != user.Gender {
			result = fail(KindGenderMismatch,
				fmt.Sprintf("Gender mismatch. This hostel is for %s occupants.", hostel.Gender))
			return errRolledBack
		}

		if err := tx.CreateOccupant(ctx, &model.OccupantDetail{
			UserID:   userID,
			HostelID: hostelID,
			RoomID:   roomID,
		}); err != nil {
			return fmt.Errorf("insert occupant record: %w", err)
		}

		decremented, err := tx.DecrementVacancy(ctx, roomID, hostelID)
		if err != nil {
			return fmt.Errorf("decrement vacancy: %w", err)
		}
		if !decremented {
			// Lost the race to the last bed since the check above.
			result = fail(KindNoVacancy, "No vacancies available in this room.")
			return errRolledBack
		}

		if err := tx.SetUserAssignment(ctx, userID, &hostelID, &roomID); err != nil {
			return fmt.Errorf("update user assignment: %w", err)
		}

		result = ok("Successfully joined the hostel room!")
		return nil
	})

	if err != nil && !errors.Is(err, errRolledBack) {
		log.Printf("apply workflow failed for user %s, room %s: %v", userID, roomID, err)
		return fail(KindRemoteOperationFailed, err.Error())
	}
	return result
}

// Remove reverses an assignment: deletes the occupant record scoped by all
// three keys, restores the room's vacancy, and clears the user's assignment.
// Runs in one transaction, mirroring Apply.
func (w *Workflow) Remove(ctx context.Context, userID, roomID, hostelID string) Result {
	var result Result
	err := w.store.Transaction(ctx, func(tx store.Store) error {
		deleted, err := tx.DeleteOccupant(ctx, userID, hostelID, roomID)
		if err != nil {
			return fmt.Errorf("delete occupant record: %w", err)
		}
		if deleted == 0 {
			result = fail(KindOccupantNotFound, "No such occupant in this room.")
			return errRolledBack
		}

		if err := tx.IncrementVacancy(ctx, roomID, hostelID); err != nil {
			return fmt.Errorf("restore vacancy: %w", err)
		}

		if err := tx.SetUserAssignment(ctx, userID, nil, nil); err != nil {
			return fmt.Errorf("clear user assignment: %w", err)
		}

		result = ok("Inmate removed successfully!")
		return nil
	})

	if err != nil && !errors.Is(err, errRolledBack) {
		log.Printf("removal workflow failed for user %s, room %s: %v", userID, roomID, err)
		return fail(KindRemoteOperationFailed, err.Error())
	}
	return result
}

// errRolledBack aborts a transaction after a business-rule failure without
// surfacing as a remote error; the Result set alongside it is authoritative.
var errRolledBack = errors.New("workflow rolled back")
