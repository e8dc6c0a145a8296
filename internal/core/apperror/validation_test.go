package apperror

import (
	"net/http"
	"testing"
)

func TestValidationResult_EmptyProducesNoError(t *testing.T) {
	res := NewValidationResult(3)
	if err := res.Err("should not happen"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !res.Empty() {
		t.Error("fresh accumulator should be empty")
	}
}

func TestValidationResult_AccumulatesFieldsAndItems(t *testing.T) {
	res := NewValidationResult(2)
	res.SetField("code", "code is required")
	res.SetField("code", "code already exists") // later rule wins
	res.SetItemField(1, "quantity", "quantity must be greater than zero")

	err := res.Err("document did not pass validation")
	if err == nil {
		t.Fatal("expected error")
	}

	appErr, ok := AsAppError(err)
	if !ok {
		t.Fatal("expected AppError")
	}
	if appErr.Code != CodeValidation {
		t.Errorf("code = %s", appErr.Code)
	}
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("status = %d", appErr.HTTPStatus)
	}

	fields := ValidationFields(err)
	if fields["code"] != "code already exists" {
		t.Errorf("fields[code] = %q", fields["code"])
	}

	items := ValidationItems(err)
	if len(items) != 2 {
		t.Fatalf("items len = %d, want 2", len(items))
	}
	if !items[0].Empty() {
		t.Error("line 0 should have no messages")
	}
	if items[1]["quantity"] == "" {
		t.Error("line 1 quantity message missing")
	}
}

func TestValidationResult_ItemGrowsOnDemand(t *testing.T) {
	res := NewValidationResult(0)
	res.SetItemField(2, "productId", "productId not found")

	if len(res.Items) != 3 {
		t.Fatalf("items len = %d, want 3", len(res.Items))
	}
	if !res.Items[0].Empty() || !res.Items[1].Empty() {
		t.Error("padded lines should be empty")
	}
}

func TestValidationResult_FieldsOnlyOmitsItems(t *testing.T) {
	res := NewValidationResult(2)
	res.SetField("storageId", "storageId is required")

	err := res.Err("document did not pass validation")
	if items := ValidationItems(err); items != nil {
		t.Errorf("expected no item details, got %v", items)
	}
}

func TestValidationHelpers_RejectOtherErrors(t *testing.T) {
	err := NewNotFound("buyer", "xyz")
	if ValidationFields(err) != nil {
		t.Error("ValidationFields should ignore non-validation errors")
	}
	if ValidationItems(err) != nil {
		t.Error("ValidationItems should ignore non-validation errors")
	}
}
