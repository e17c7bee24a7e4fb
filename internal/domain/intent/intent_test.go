package intent

import "testing"

func TestAnswersFromPool(t *testing.T) {
	for _, i := range []Intent{Support, DomainChat, GeneralChat} {
		if !i.AnswersFromPool() {
			t.Errorf("%s should answer from pool", i)
		}
	}
	for _, i := range []Intent{UnitConverter, Wikipedia, Fallback} {
		if i.AnswersFromPool() {
			t.Errorf("%s should not answer from pool", i)
		}
	}
}
