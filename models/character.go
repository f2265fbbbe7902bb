package models

// Character is one draftable entity as stored in the characters table.
// Rarity is the 1-indexed tier; a rarity of 3 renders as three stars.
type Character struct {
	MasterNumber int    `json:"masternumber"`
	Rarity       int    `json:"rarity"`
	Name         string `json:"name"`
	Type         int    `json:"type"`
}

// StandardPoolType marks characters that belong to the permanent pool.
const StandardPoolType = 0
