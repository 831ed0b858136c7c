package mcp

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rpggio/checkmaster/internal/domain/checklist"
	"github.com/rpggio/checkmaster/internal/domain/session"
)

// Controller is the session surface the tools drive.
type Controller interface {
	Snapshot() checklist.Project
	ExportSnapshot(scope checklist.Scope) checklist.Export
	Dispatch(ctx context.Context, intent session.Intent) checklist.Project
	LastSavedAt() time.Time
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Handler turns tool arguments into controller intents.
type Handler struct {
	ctrl Controller
}

// NewHandler creates a new MCP handler.
func NewHandler(ctrl Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

func (h *Handler) GetChecklist(_ context.Context, _ GetChecklistParams) (*ChecklistResponse, error) {
	return toChecklistResponse(h.ctrl.Snapshot(), h.ctrl.LastSavedAt()), nil
}

func (h *Handler) ExportChecklist(_ context.Context, req ExportChecklistParams) (*checklist.Export, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	scope := checklist.ScopeActive
	if req.Scope != "" {
		scope = checklist.Scope(req.Scope)
	}
	export := h.ctrl.ExportSnapshot(scope)
	return &export, nil
}

func (h *Handler) AddSection(ctx context.Context, _ AddSectionParams) (*ChecklistResponse, error) {
	return h.dispatch(ctx, session.AddSection{})
}

func (h *Handler) DuplicateSection(ctx context.Context, req SectionParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.DuplicateSection{SectionID: req.SectionID})
}

func (h *Handler) DeleteSection(ctx context.Context, req SectionParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.DeleteSection{SectionID: req.SectionID})
}

func (h *Handler) SelectSection(ctx context.Context, req SectionParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.SelectSection{SectionID: req.SectionID})
}

func (h *Handler) AddCategory(ctx context.Context, req SectionParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.AddCategory{SectionID: req.SectionID})
}

func (h *Handler) DeleteCategory(ctx context.Context, req CategoryParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.DeleteCategory{SectionID: req.SectionID, CategoryID: req.CategoryID})
}

func (h *Handler) AddItem(ctx context.Context, req CategoryParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.AddItem{SectionID: req.SectionID, CategoryID: req.CategoryID})
}

func (h *Handler) DeleteItem(ctx context.Context, req ItemParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.DeleteItem{SectionID: req.SectionID, CategoryID: req.CategoryID, ItemID: req.ItemID})
}

func (h *Handler) UpdateItemLabel(ctx context.Context, req UpdateItemLabelParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.UpdateItemLabel{CategoryID: req.CategoryID, ItemID: req.ItemID, Label: req.Label})
}

func (h *Handler) UpdateCategoryTitle(ctx context.Context, req UpdateCategoryTitleParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.UpdateCategoryTitle{CategoryID: req.CategoryID, Title: req.Title})
}

func (h *Handler) SetSectionField(ctx context.Context, req SetSectionFieldParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.SetSectionField{
		SectionID: req.SectionID,
		Field:     checklist.SectionField(req.Field),
		Value:     req.Value,
	})
}

func (h *Handler) ToggleItemStatus(ctx context.Context, req ToggleItemStatusParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.ToggleItemStatus{
		SectionID:  req.SectionID,
		CategoryID: req.CategoryID,
		ItemID:     req.ItemID,
		Status:     checklist.Status(req.Status),
	})
}

func (h *Handler) ReorderSections(ctx context.Context, req ReorderSectionsParams) (*ChecklistResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return h.dispatch(ctx, session.ReorderSections{SectionID: req.SectionID, TargetIndex: req.TargetIndex})
}

func (h *Handler) ResetChecklist(ctx context.Context, req ResetChecklistParams) (*ChecklistResponse, error) {
	if !req.Confirm {
		return nil, ErrConfirmationRequired
	}
	return h.dispatch(ctx, session.ResetToDefault{})
}

func (h *Handler) dispatch(ctx context.Context, intent session.Intent) (*ChecklistResponse, error) {
	p := h.ctrl.Dispatch(ctx, intent)
	return toChecklistResponse(p, h.ctrl.LastSavedAt()), nil
}
