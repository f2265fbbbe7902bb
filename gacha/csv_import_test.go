package gacha

import (
	"strings"
	"testing"

	"gacha-backend/models"
)

func TestParseCharactersCSVSuccess(t *testing.T) {
	csvData := "masternumber,rarity,name,type\n" +
		"101,1,Slime,0\n" +
		"601,6,\"Phoenix, the Undying\",\n" +
		"900,3,Event Knight,2\n"

	characters, err := ParseCharactersCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("expected parse to succeed, got error: %v", err)
	}
	if len(characters) != 3 {
		t.Fatalf("expected 3 characters, got %d", len(characters))
	}
	want := models.Character{MasterNumber: 601, Rarity: 6, Name: "Phoenix, the Undying", Type: models.StandardPoolType}
	if characters[1] != want {
		t.Fatalf("unexpected second row parsed: %+v", characters[1])
	}
	if characters[2].Type != 2 {
		t.Fatalf("expected explicit type 2, got %d", characters[2].Type)
	}
}

func TestParseCharactersCSVWithoutTypeColumn(t *testing.T) {
	characters, err := ParseCharactersCSV(strings.NewReader("name,rarity,masternumber\nSlime,1,101\n"))
	if err != nil {
		t.Fatalf("expected parse to succeed, got error: %v", err)
	}
	if characters[0].Type != models.StandardPoolType || characters[0].MasterNumber != 101 {
		t.Fatalf("unexpected row parsed: %+v", characters[0])
	}
}

func TestParseCharactersCSVErrors(t *testing.T) {
	tests := map[string]string{
		"missing column":     "masternumber,name\n1,Slime\n",
		"header only":        "masternumber,rarity,name\n",
		"bad rarity":         "masternumber,rarity,name\n1,high,Slime\n",
		"negative rarity":    "masternumber,rarity,name\n1,-2,Slime\n",
		"blank name":         "masternumber,rarity,name\n1,1, \n",
		"duplicate number":   "masternumber,rarity,name\n1,1,Slime\n1,2,Goblin\n",
		"bad type":           "masternumber,rarity,name,type\n1,1,Slime,x\n",
		"blank masternumber": "masternumber,rarity,name\n,1,Slime\n",
	}

	for name, csvData := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCharactersCSV(strings.NewReader(csvData)); err == nil {
				t.Fatal("expected parse error, got nil")
			}
		})
	}
}
