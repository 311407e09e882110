// Package cli implements the agentkit command line tool. It exposes the
// registered agent tools for inspection and one-off execution, so the tool
// surface can be exercised without wiring up an agent framework.
package cli
