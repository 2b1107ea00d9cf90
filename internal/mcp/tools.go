package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcpsdk "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/gocalc/pkg/calculation"
)

// CalculateResult is the JSON payload returned by the calculate tool.
// Non-finite numbers are null.
type CalculateResult struct {
	Operation   string   `json:"operation"`
	A           *float64 `json:"a"`
	B           *float64 `json:"b"`
	Result      *float64 `json:"result"`
	Description string   `json:"description"`
}

// RegisterAllTools wires every gocalc tool into the MCP server.
func RegisterAllTools(s *server.MCPServer, state *CalcServer) {
	addCalculateTool(s, state)
	addListOperationsTool(s, state)
}

// addCalculateTool adds the calculate tool to the MCP server
func addCalculateTool(s *server.MCPServer, state *CalcServer) {
	calculateTool := mcpsdk.NewTool("calculate",
		mcpsdk.WithDescription("Apply an arithmetic operation to two numbers"),
		mcpsdk.WithString("operation",
			mcpsdk.Required(),
			mcpsdk.Description("Operation name, e.g. 'add', 'subtract', 'multiply', 'divide' or 'power'"),
		),
		mcpsdk.WithNumber("a",
			mcpsdk.Required(),
			mcpsdk.Description("First operand"),
		),
		mcpsdk.WithNumber("b",
			mcpsdk.Required(),
			mcpsdk.Description("Second operand"),
		),
	)

	s.AddTool(calculateTool, state.HandleCalculate)
}

// addListOperationsTool adds the list_operations tool to the MCP server
func addListOperationsTool(s *server.MCPServer, state *CalcServer) {
	listTool := mcpsdk.NewTool("list_operations",
		mcpsdk.WithDescription("List the operation names accepted by the calculate tool"),
	)

	s.AddTool(listTool, state.HandleListOperations)
}

// HandleCalculate runs a calculation. Calculation failures are reported as
// tool errors, not protocol errors.
func (cs *CalcServer) HandleCalculate(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args := request.GetArguments()

	operation, ok := args["operation"].(string)
	if !ok || operation == "" {
		return mcpsdk.NewToolResultError("operation is required"), nil
	}

	a, ok := args["a"].(float64)
	if !ok {
		return mcpsdk.NewToolResultError("a must be a number"), nil
	}

	b, ok := args["b"].(float64)
	if !ok {
		return mcpsdk.NewToolResultError("b must be a number"), nil
	}

	calc, err := cs.registry.Create(operation, a, b)
	if err != nil {
		cs.logger.Debug("calculate rejected", "operation", operation, "err", err)
		return mcpsdk.NewToolResultError(err.Error()), nil
	}

	result, err := calc.Execute()
	if err != nil {
		cs.logger.Debug("calculate failed", "operation", operation, "err", err)
		return mcpsdk.NewToolResultError(err.Error()), nil
	}

	desc, err := calc.Describe()
	if err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}

	payload, err := json.MarshalIndent(CalculateResult{
		Operation:   strings.ToLower(operation),
		A:           calculation.FiniteOrNil(a),
		B:           calculation.FiniteOrNil(b),
		Result:      calculation.FiniteOrNil(result),
		Description: desc,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	cs.logger.Info("calculate", "operation", operation, "result", desc)
	return mcpsdk.NewToolResultText(string(payload)), nil
}

// HandleListOperations returns the registered operation names as a JSON array
func (cs *CalcServer) HandleListOperations(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	payload, err := json.Marshal(cs.registry.Names())
	if err != nil {
		return nil, fmt.Errorf("encode operations: %w", err)
	}
	return mcpsdk.NewToolResultText(string(payload)), nil
}
