package model

import "testing"

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()

	if s.IsFitted() {
		t.Error("fresh manager should not be fitted")
	}
	if err := s.RequireFitted(); err == nil {
		t.Error("RequireFitted should fail before fitting")
	}

	s.SetDimensions(3, 100)
	s.SetFitted()

	if !s.IsFitted() {
		t.Error("manager should be fitted after SetFitted")
	}
	if err := s.RequireFitted(); err != nil {
		t.Errorf("RequireFitted after SetFitted: %v", err)
	}
	nFeatures, nSamples := s.GetDimensions()
	if nFeatures != 3 || nSamples != 100 {
		t.Errorf("dimensions = (%d, %d), want (3, 100)", nFeatures, nSamples)
	}

	s.Reset()
	if s.IsFitted() {
		t.Error("manager should not be fitted after Reset")
	}
	nFeatures, nSamples = s.GetDimensions()
	if nFeatures != 0 || nSamples != 0 {
		t.Errorf("dimensions after Reset = (%d, %d), want (0, 0)", nFeatures, nSamples)
	}
}

func TestModelWeightsValidate(t *testing.T) {
	w := &ModelWeights{
		ModelType:    "LassoLars",
		Version:      "1.0.0",
		Coefficients: []float64{1.5, 0, -0.2},
		IsFitted:     true,
	}
	if err := w.Validate(); err != nil {
		t.Errorf("valid weights rejected: %v", err)
	}

	w.ModelType = ""
	if err := w.Validate(); err == nil {
		t.Error("missing model type should be rejected")
	}

	unfitted := &ModelWeights{
		ModelType:    "Lars",
		Version:      "1.0.0",
		Coefficients: []float64{1},
	}
	if err := unfitted.Validate(); err == nil {
		t.Error("unfitted weights with coefficients should be rejected")
	}
}

func TestModelWeightsJSONRoundTrip(t *testing.T) {
	w := &ModelWeights{
		ModelType:       "LassoLars",
		Version:         "1.0.0",
		Coefficients:    []float64{1.5, 0, -0.2},
		Hyperparameters: map[string]interface{}{"desired_lambda": 0.5},
		IsFitted:        true,
	}

	data, err := w.ToJSON()
	if err != nil {
		t.Fatal(err)
	}

	var got ModelWeights
	if err := got.FromJSON(data); err != nil {
		t.Fatal(err)
	}
	if got.ModelType != w.ModelType || len(got.Coefficients) != 3 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Coefficients[0] != 1.5 || got.Coefficients[2] != -0.2 {
		t.Errorf("coefficients corrupted: %v", got.Coefficients)
	}
}
