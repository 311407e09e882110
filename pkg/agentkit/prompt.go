package agentkit

import (
	"fmt"
	"strings"
)

// DescribeContext renders the agent context as prompt text prepended to tool
// descriptions, so the model knows which account it acts for and how
// transactions are dispatched.
func DescribeContext(kit *Context) string {
	var builder strings.Builder

	if kit != nil && kit.AccountID != "" {
		fmt.Fprintf(&builder, "The connected account is %s. ", kit.AccountID)
	}

	switch kit.EffectiveMode() {
	case AgentModeReturnBytes:
		builder.WriteString(
			"Transactions are returned as unsigned bytes for the connected account to sign.",
		)
	default:
		builder.WriteString("Transactions are executed directly with the operator account.")
	}

	return builder.String()
}

// ParameterGuidance is shared prompt text telling the model not to invent
// parameter values.
func ParameterGuidance() string {
	return "Only set parameters the user explicitly provided; " +
		"leave optional parameters unset to use their defaults."
}

// DescribeOptionalAccount describes an optional account parameter, naming
// the default it falls back to.
func DescribeOptionalAccount(role string, kit *Context) string {
	if kit != nil && kit.AccountID != "" {
		return fmt.Sprintf(
			"Optional. The %s account in shard.realm.num format; defaults to the connected account %s.",
			role, kit.AccountID,
		)
	}
	return fmt.Sprintf(
		"Optional. The %s account in shard.realm.num format; defaults to the operator account.",
		role,
	)
}
