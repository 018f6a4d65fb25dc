package request

import "commerce-order-core/internal/usecase/commands"

type ProcessRefundRequest struct {
	Reason string `json:"reason"`
}

func (r *ProcessRefundRequest) ToCommand() commands.ProcessRefundCommand {
	return commands.ProcessRefundCommand{Reason: r.Reason}
}
