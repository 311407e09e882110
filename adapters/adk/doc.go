// Package adk bridges the agent kit's tools into Gemini-based agent
// frameworks built on google.golang.org/genai.
//
// Declarations() produces one genai.FunctionDeclaration per kit tool, ready
// to pass as the model's tool configuration, and Dispatcher routes the
// model's function calls back into the kit.
package adk
