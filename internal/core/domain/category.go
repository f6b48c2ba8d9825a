package domain

// NewsCategory is a taxonomy node that news articles belong to.
type NewsCategory struct {
	ID   int64
	Name string
}

type CategoryPatch struct {
	Name *string
}

func (p CategoryPatch) Apply(c *NewsCategory) {
	if p.Name != nil {
		c.Name = *p.Name
	}
}
