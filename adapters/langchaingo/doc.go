// Package langchaingo bridges the agent kit's tools into the
// tmc/langchaingo AI agent framework.
//
// Every kit tool becomes a langchaingo tools.Tool whose input is the tool's
// JSON parameter object. Execution errors are returned as observations so
// the language model can react to them instead of aborting the run.
//
// # Usage
//
//	api := agentkit.NewAgentAPI(client, configuration, plugins.Core(), logger)
//	toolkit := langchaingo.NewToolkit(api)
//	agent := initialize.NewSingleActionAgent(llm, toolkit.Tools())
package langchaingo
