package indexset

import "github.com/npillmayer/tnet/index"

// === Contraction support ===================================================

// ComputeLabels labels the legs of two index sets for contraction. Legs with
// equal indices in l and r are contracted and get the same negative label
// -1, -2, …, in the order they appear in l. All other legs get distinct
// positive labels 1, 2, …, counted separately for l and r.
func ComputeLabels(l, r *IndexSet) (llabels, rlabels []int) {
	lind, rind := l.Indices(), r.Indices()
	llabels, rlabels = make([]int, len(lind)), make([]int, len(rind))
	ncon := 0
	for k, i := range lind {
		if !r.Contains(i) {
			continue
		}
		for j := range rind {
			if rlabels[j] == 0 && i.Equal(rind[j]) {
				ncon++
				llabels[k], rlabels[j] = -ncon, -ncon
				break
			}
		}
	}
	labelUncontracted(llabels)
	labelUncontracted(rlabels)
	tracer().Debugf("%d legs contracted", ncon)
	return
}

func labelUncontracted(labels []int) {
	u := 0
	for k := range labels {
		if labels[k] == 0 {
			u++
			labels[k] = u
		}
	}
}

// Contract returns the index set of the result of contracting tensors with
// legs l and r: all uncontracted legs of l, followed by all uncontracted
// legs of r. If sorted is set, the result is in canonical order.
func Contract(l, r *IndexSet, sorted bool) (*IndexSet, error) {
	llabels, rlabels := ComputeLabels(l, r)
	result, _ := New()
	add := func(is *IndexSet, labels []int) error {
		for k, i := range is.Indices() {
			if labels[k] > 0 {
				if err := result.Add(i); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := add(l, llabels); err != nil {
		return nil, err
	}
	if err := add(r, rlabels); err != nil {
		return nil, err
	}
	if sorted {
		return result.Sorted(), nil
	}
	return result, nil
}

// Contracted returns the indices common to l and r, in the order of l.
func Contracted(l, r *IndexSet) []index.Index {
	llabels, _ := ComputeLabels(l, r)
	var common []index.Index
	for k, i := range l.Indices() {
		if llabels[k] < 0 {
			common = append(common, i)
		}
	}
	return common
}
