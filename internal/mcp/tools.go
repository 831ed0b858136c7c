package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *sdkmcp.Server, h *Handler, logger *slog.Logger) {
	// Reads
	addTool(server, logger, "get_checklist",
		"Get the whole checklist: sections with progress, categories, items and their statuses", h.GetChecklist)
	addTool(server, logger, "export_checklist",
		"Export the checklist as a read-only report snapshot (active section or all sections)", h.ExportChecklist)

	// Sections
	addTool(server, logger, "add_section",
		"Append a new section with one empty category and make it active", h.AddSection)
	addTool(server, logger, "duplicate_section",
		"Insert a deep copy of a section right after it, with fresh ids, and make the copy active", h.DuplicateSection)
	addTool(server, logger, "delete_section",
		"Delete a section; the last remaining section cannot be deleted", h.DeleteSection)
	addTool(server, logger, "select_section",
		"Make a section the active one", h.SelectSection)
	addTool(server, logger, "set_section_field",
		"Set a section's title, projectCode, designer or reviewer", h.SetSectionField)
	addTool(server, logger, "reorder_sections",
		"Move a section to a new zero-based position", h.ReorderSections)

	// Categories and items
	addTool(server, logger, "add_category",
		"Append an empty category to a section", h.AddCategory)
	addTool(server, logger, "delete_category",
		"Delete a category and all of its items", h.DeleteCategory)
	addTool(server, logger, "update_category_title",
		"Rename a category in the active section", h.UpdateCategoryTitle)
	addTool(server, logger, "add_item",
		"Append a pending item to a category", h.AddItem)
	addTool(server, logger, "delete_item",
		"Delete an item from a category", h.DeleteItem)
	addTool(server, logger, "update_item_label",
		"Change an item label in the active section", h.UpdateItemLabel)
	addTool(server, logger, "toggle_item_status",
		"Mark an item OK or NA; repeating the item's current status clears it to PENDING", h.ToggleItemStatus)

	addTool(server, logger, "reset_checklist",
		"Discard every edit and restore the default checklist; requires confirm=true", h.ResetChecklist)
}

// addTool registers fn as a tool whose result is returned as JSON text.
// Handler errors become tool errors carrying an APIError payload.
func addTool[In, Out any](server *sdkmcp.Server, logger *slog.Logger, name, description string, fn func(context.Context, In) (Out, error)) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: name, Description: description},
		func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
			out, err := fn(ctx, in)
			if err != nil {
				apiErr := MapError(err)
				if logger != nil {
					logger.Warn("tool call rejected", "tool", name, "code", apiErr.Code, "error", apiErr.Message)
				}
				return errorResult(apiErr), nil, nil
			}
			return jsonResult(out)
		})
}

func jsonResult(v any) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}

func errorResult(apiErr *APIError) *sdkmcp.CallToolResult {
	data, err := json.Marshal(apiErr)
	if err != nil {
		data = []byte(apiErr.Error())
	}
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}
}
