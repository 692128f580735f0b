package session

import (
	"strings"

	"github.com/Joseda-hg/todo/internal/model"
)

// Every prompt's input is reduced to one of these closed sets before any
// flow acts on it. The zero value of each set means "stay where you are".

type menuCommand int

const (
	menuStay menuCommand = iota
	menuView
	menuAdd
	menuDelete
	menuModify
	menuExit
)

var menuCommands = map[string]menuCommand{
	"view":   menuView,
	"add":    menuAdd,
	"delete": menuDelete,
	"modify": menuModify,
	"exit":   menuExit,
}

type viewCommand int

const (
	viewStay viewCommand = iota
	viewDetail
	viewFilter
	viewSort
	viewDone
)

var viewCommands = map[string]viewCommand{
	"view":   viewDetail,
	"filter": viewFilter,
	"sort":   viewSort,
	"done":   viewDone,
}

type addCommand int

const (
	addStay addCommand = iota
	addName
	addNotes
	addDate
	addOK
)

var addCommands = map[string]addCommand{
	"name":  addName,
	"notes": addNotes,
	"date":  addDate,
	"ok":    addOK,
}

type updateCommand int

const (
	updateStay updateCommand = iota
	updateTitle
	updateNotes
	updateDate
	updateDone
	updateCancel
)

var updateCommands = map[string]updateCommand{
	"title":  updateTitle,
	"notes":  updateNotes,
	"date":   updateDate,
	"done":   updateDone,
	"cancel": updateCancel,
}

type answer int

const (
	answerOther answer = iota
	answerYes
	answerNo
)

var answers = map[string]answer{
	"y": answerYes,
	"n": answerNo,
}

var sortKeys = map[string]model.SortKey{
	"id":   model.SortByID,
	"name": model.SortByName,
	"date": model.SortByDate,
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func parseMenuCommand(input string) menuCommand {
	return menuCommands[normalize(input)]
}

func parseViewCommand(input string) viewCommand {
	return viewCommands[normalize(input)]
}

func parseAddCommand(input string) addCommand {
	return addCommands[normalize(input)]
}

func parseUpdateCommand(input string) updateCommand {
	return updateCommands[normalize(input)]
}

func parseAnswer(input string) answer {
	return answers[normalize(input)]
}

func parseSortKey(input string) (model.SortKey, bool) {
	key, ok := sortKeys[normalize(input)]
	return key, ok
}
