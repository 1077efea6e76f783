package dom

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data string
}

func (c *CharacterData) AppendData(data string) { c.Data += data }

// https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
}

// https://dom.spec.whatwg.org/#comment
type Comment struct {
	*CharacterData
}
