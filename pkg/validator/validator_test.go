package validator

import (
	"errors"
	"sync"
	"testing"
)

type sample struct {
	Name string `validate:"required"`
	Port int    `validate:"gt=0"`
}

func TestValidateStructConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				errs <- ValidateStruct(sample{Name: "gateway", Port: 8080})
				return
			}
			if err := ValidateStruct(sample{}); err == nil {
				errs <- errors.New("expected validation error for empty sample")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestTranslateError(t *testing.T) {
	got := TranslateError(ValidateStruct(sample{Name: "x"}))
	if _, ok := got["Port"]; !ok || len(got) != 1 {
		t.Fatalf("expected only Port to be reported, got %v", got)
	}
	if len(TranslateError(errors.New("other"))) != 0 {
		t.Fatal("non-validation errors should translate to an empty map")
	}
}
