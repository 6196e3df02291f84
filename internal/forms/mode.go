package forms

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

func modeOf(editing bool) Mode {
	if editing {
		return ModeEdit
	}
	return ModeCreate
}
