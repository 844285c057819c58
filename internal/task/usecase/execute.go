package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
)

// Reminder lead time for "lembrar" commands, minutes before the event start.
const remindLeadMinutes = 30

// ExecuteCommand interprets the sentence and runs the resulting action.
// Meetings go through the scheduling engine; every other action creates a
// task directly, since listing and edits are explicit API operations rather
// than things the classifier can recognize from free text.
func (uc *implUseCase) ExecuteCommand(ctx context.Context, input task.CommandInput) (task.CommandOutput, error) {
	sentence := strings.TrimSpace(input.Sentence)
	if sentence == "" {
		return task.CommandOutput{}, task.ErrEmptyCommand
	}

	intent, err := uc.interp.ExtractIntent(ctx, sentence)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ExecuteCommand: interpret: %v", err)
		return task.CommandOutput{}, fmt.Errorf("failed to interpret command: %w", err)
	}

	if intent.Action == model.ActionMeeting {
		return uc.scheduleFromIntent(ctx, intent, input.Confirm)
	}
	return uc.createFromIntent(ctx, intent, input.Confirm)
}
