package ast

type walkEntry struct {
	id    StmtID
	group []StmtID // тело except/case: отдельный уровень дерева
	isGrp bool
}

// Walk visits every statement reachable from body breadth-first. Siblings are
// visited in source order and nested bodies in field order: body, handlers,
// orelse, finalbody. Returning false from visit stops the walk.
func (s *Stmts) Walk(body []StmtID, visit func(StmtID, *Stmt) bool) {
	queue := make([]walkEntry, 0, len(body))
	for _, id := range body {
		queue = append(queue, walkEntry{id: id})
	}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e.isGrp {
			for _, id := range e.group {
				queue = append(queue, walkEntry{id: id})
			}
			continue
		}
		st := s.Get(e.id)
		if st == nil {
			continue
		}
		if !visit(e.id, st) {
			return
		}
		queue = s.appendChildren(queue, e.id, st)
	}
}

func (s *Stmts) appendChildren(queue []walkEntry, id StmtID, st *Stmt) []walkEntry {
	push := func(ids []StmtID) {
		for _, c := range ids {
			queue = append(queue, walkEntry{id: c})
		}
	}
	switch st.Kind {
	case StmtFunctionDef:
		fn, _ := s.FunctionDef(id)
		push(fn.Body)
	case StmtClassDef:
		cls, _ := s.ClassDef(id)
		push(cls.Body)
	case StmtIf, StmtWhile:
		c, _ := s.Cond(id)
		push(c.Body)
		push(c.Orelse)
	case StmtFor:
		f, _ := s.For(id)
		push(f.Body)
		push(f.Orelse)
	case StmtWith:
		w, _ := s.With(id)
		push(w.Body)
	case StmtTry:
		t, _ := s.Try(id)
		push(t.Body)
		for _, h := range t.Handlers {
			queue = append(queue, walkEntry{group: h.Body, isGrp: true})
		}
		push(t.Orelse)
		push(t.Finalbody)
	case StmtMatch:
		m, _ := s.Match(id)
		for _, c := range m.Cases {
			queue = append(queue, walkEntry{group: c.Body, isGrp: true})
		}
	}
	return queue
}

// Block returns the statements nested directly in id, in field order.
// Handler and case bodies are flattened.
func (s *Stmts) Block(id StmtID) []StmtID {
	st := s.Get(id)
	if st == nil {
		return nil
	}
	var out []StmtID
	for _, e := range s.appendChildren(nil, id, st) {
		if e.isGrp {
			out = append(out, e.group...)
			continue
		}
		out = append(out, e.id)
	}
	return out
}
