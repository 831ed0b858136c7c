package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `checkmaster edits a structural-engineering checklist: Project → Sections → Categories → Items.

Core concepts:
- Section: a reorderable module of the checklist with optional projectCode, designer and reviewer fields. Exactly one section is active.
- Category: a titled group of items inside a section.
- Item: a label with a status of PENDING, OK or NA. Progress = round(100 * (OK + NA) / items) per section.

Rules of engagement:
1) Orient: call get_checklist and read ids from it. Never invent ids.
2) Mutate with one tool per action. Tools that name an unknown id change nothing and return the unchanged checklist.
3) toggle_item_status only accepts OK or NA. Sending the status an item already has clears it back to PENDING.
4) update_item_label and update_category_title act on the active section; call select_section first when needed.
5) reset_checklist destroys every edit. Ask the user first and pass confirm=true.
6) export_checklist returns the report snapshot (scope active or all).

Every change is saved immediately.

Docs:
- checkmaster://docs/index
- checkmaster://docs/concepts
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "checkmaster://docs/index",
		Name:        "docs_index",
		Title:       "checkmaster docs index",
		Description: "Entry point for agent-facing docs: tools by task and known limitations.",
		Content: `# checkmaster: Agent Docs Index

## Quick start

1. ` + "`get_checklist`" + ` to see sections, categories, items and progress.
2. ` + "`select_section`" + ` to focus a section.
3. ` + "`toggle_item_status`" + ` with ` + "`OK`" + ` or ` + "`NA`" + ` as items get verified.
4. ` + "`export_checklist`" + ` to hand the result to a report.

## Tools by task

- Structure: ` + "`add_section`" + `, ` + "`duplicate_section`" + `, ` + "`delete_section`" + `, ` + "`reorder_sections`" + `, ` + "`add_category`" + `, ` + "`delete_category`" + `, ` + "`add_item`" + `, ` + "`delete_item`" + `.
- Text: ` + "`set_section_field`" + `, ` + "`update_category_title`" + `, ` + "`update_item_label`" + `. Text is stored verbatim, including empty strings.
- Reset: ` + "`reset_checklist`" + ` with ` + "`confirm=true`" + `.

## Limitations

- There is no undo. ` + "`reset_checklist`" + ` cannot be reverted.
- The last section cannot be deleted.
- Category and item ids are only unique inside their parent, so every tool takes the full path of ids.
`,
	},
	{
		URI:         "checkmaster://docs/concepts",
		Name:        "docs_concepts",
		Title:       "Concepts and invariants",
		Description: "Tree invariants, status toggling and progress computation.",
		Content: `# Concepts and invariants

## Tree

- A checklist always has at least one section.
- Section ids are unique in the checklist. Category ids are unique in their section. Item ids are unique in their category.
- The active section always exists. Deleting it makes the first section active.
- New and duplicated sections become active.

## Status

Items are ` + "`PENDING`" + `, ` + "`OK`" + ` or ` + "`NA`" + `. Toggling is exclusive: requesting the current status resets the item to ` + "`PENDING`" + `, any other request replaces it.

## Progress

For each section, progress is ` + "`round(100 * (OK + NA) / items)`" + `, and 0 when the section has no items.

## Persistence

Every change is written immediately. A stored checklist that fails validation is replaced by the default checklist on the next start.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
