package sdui

import "testing"

func job(id, customer string) *testJob {
	return &testJob{id: id, customer: customer}
}

func TestRecordList(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		l := NewRecordList()
		l.Add(job("a", "Acme")).Add(job("b", "Birch"))

		if l.Len() != 2 {
			t.Errorf("expected len 2, got %d", l.Len())
		}
		if l.At(0).RecordID() != "a" || l.At(1).RecordID() != "b" {
			t.Errorf("unexpected order: %v, %v", l.At(0), l.At(1))
		}
	})

	t.Run("Insert", func(t *testing.T) {
		l := NewRecordList()
		l.Add(job("a", "")).Add(job("c", ""))
		l.Insert(1, job("b", ""))

		if l.Len() != 3 {
			t.Fatalf("expected len 3, got %d", l.Len())
		}
		if l.At(0).RecordID() != "a" || l.At(1).RecordID() != "b" || l.At(2).RecordID() != "c" {
			t.Errorf("expected [a,b,c], got %v", l.Records())
		}
	})

	t.Run("RemoveAt", func(t *testing.T) {
		l := NewRecordList()
		l.Add(job("a", "")).Add(job("b", "")).Add(job("c", ""))
		l.RemoveAt(1)

		if l.Len() != 2 {
			t.Errorf("expected len 2, got %d", l.Len())
		}
		if l.At(0).RecordID() != "a" || l.At(1).RecordID() != "c" {
			t.Errorf("expected [a,c], got %v", l.Records())
		}
	})

	t.Run("Update", func(t *testing.T) {
		l := NewRecordList()
		l.Add(job("a", "Acme"))

		l.Update(0, func(r Record) {
			r.(*testJob).customer = "Acme Labs"
		})

		if l.At(0).(*testJob).customer != "Acme Labs" {
			t.Errorf("update not applied: %v", l.At(0))
		}
	})

	t.Run("Move", func(t *testing.T) {
		l := NewRecordList()
		l.Add(job("a", "")).Add(job("b", "")).Add(job("c", ""))
		l.Move(0, 2)

		if l.At(0).RecordID() != "b" || l.At(1).RecordID() != "c" || l.At(2).RecordID() != "a" {
			t.Errorf("expected [b,c,a], got %v", l.Records())
		}

		l.Move(2, 0)
		if l.At(0).RecordID() != "a" || l.At(1).RecordID() != "b" || l.At(2).RecordID() != "c" {
			t.Errorf("expected [a,b,c], got %v", l.Records())
		}
	})

	t.Run("IndexOf", func(t *testing.T) {
		l := NewRecordList()
		l.Add(job("a", "")).Add(job("b", ""))
		if i := l.IndexOf("b"); i != 1 {
			t.Errorf("expected 1, got %d", i)
		}
		if i := l.IndexOf("missing"); i != -1 {
			t.Errorf("expected -1, got %d", i)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		l := NewRecordList()
		l.Add(job("a", "")).Add(job("b", ""))
		l.Clear()

		if l.Len() != 0 {
			t.Errorf("expected len 0, got %d", l.Len())
		}
	})

	t.Run("Subscribe", func(t *testing.T) {
		l := NewRecordList()
		var changes []RecordChange

		l.Subscribe(func(c RecordChange) {
			changes = append(changes, c)
		})

		l.Add(job("a", "Acme"))
		l.Update(0, func(r Record) { r.(*testJob).customer = "Acme Labs" })
		l.Move(0, 0) // no-op, no notification
		l.Add(job("b", ""))
		l.Move(0, 1)
		l.RemoveAt(0)

		if len(changes) != 5 {
			t.Fatalf("expected 5 changes, got %d", len(changes))
		}
		if changes[0].Type != ChangeAdd {
			t.Errorf("expected ChangeAdd, got %v", changes[0].Type)
		}
		if changes[1].Type != ChangeUpdate {
			t.Errorf("expected ChangeUpdate, got %v", changes[1].Type)
		}
		if changes[3].Type != ChangeMove || changes[3].Index != 0 || changes[3].To != 1 {
			t.Errorf("expected move 0->1, got %+v", changes[3])
		}
		if changes[4].Type != ChangeRemove {
			t.Errorf("expected ChangeRemove, got %v", changes[4].Type)
		}
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		l := NewRecordList()
		callCount := 0

		unsub := l.Subscribe(func(c RecordChange) {
			callCount++
		})

		l.Add(job("a", ""))
		unsub()
		l.Add(job("b", ""))

		if callCount != 1 {
			t.Errorf("expected 1 call, got %d", callCount)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		l := NewRecordList()
		l.Add(job("a", ""))

		// At out of bounds returns nil
		if l.At(-1) != nil || l.At(999) != nil {
			t.Errorf("expected nil for out-of-bounds index")
		}

		// Update, RemoveAt, Move out of bounds are no-ops
		l.Update(999, func(r Record) { r.(*testJob).customer = "x" })
		l.RemoveAt(-1)
		l.RemoveAt(999)
		l.Move(0, 5)
		l.Move(-1, 0)
		if l.Len() != 1 || l.At(0).(*testJob).customer != "" {
			t.Errorf("list should be unchanged")
		}
	})
}
