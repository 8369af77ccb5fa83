package store

// BatchOp is a single write inside a [Batch]. A nil Value with Remove set
// deletes the key.
type BatchOp struct {
	Key    string
	Value  []byte
	Remove bool
}

// Batch is an ordered list of writes applied atomically by
// [SecureStorage.Apply].
type Batch struct {
	ops []BatchOp
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Put schedules a set of key to value.
func (b *Batch) Put(key string, value []byte) *Batch {
	b.ops = append(b.ops, BatchOp{Key: key, Value: value})
	return b
}

// Delete schedules the removal of key.
func (b *Batch) Delete(key string) *Batch {
	b.ops = append(b.ops, BatchOp{Key: key, Remove: true})
	return b
}

// Ops returns the scheduled writes in order.
func (b *Batch) Ops() []BatchOp {
	if b == nil {
		return nil
	}
	return b.ops
}

// Len returns the number of scheduled writes.
func (b *Batch) Len() int {
	return len(b.Ops())
}
