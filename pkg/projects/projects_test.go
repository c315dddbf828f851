//go:build unit

package projects

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgoudin/idea-manager/pkg/logger"
)

// fakeRunner replays canned gh responses and records invocations.
type fakeRunner struct {
	responses []response
	calls     [][]string
}

type response struct {
	output string
	err    error
}

func (f *fakeRunner) Run(args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if len(f.responses) == 0 {
		return nil, errors.New("fakeRunner: no responses left")
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	return []byte(next.output), next.err
}

func TestResolveProject_Organization(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{output: `{"data":{"organization":{"projectV2":{"id":"PVT_org"}}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	id, err := p.ResolveProject("acme-ui", 4)
	require.NoError(t, err)
	assert.Equal(t, "PVT_org", id)
	assert.Len(t, runner.calls, 1)
}

func TestResolveProject_UserFallback(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{err: fmt.Errorf("%w: Could not resolve to an Organization", ErrGraphQL)},
		{output: `{"data":{"user":{"projectV2":{"id":"PVT_user"}}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	id, err := p.ResolveProject("sam", 2)
	require.NoError(t, err)
	assert.Equal(t, "PVT_user", id)
	assert.Len(t, runner.calls, 2)
}

func TestResolveProject_NotFound(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{output: `{"data":{"organization":{"projectV2":null}}}`},
		{output: `{"data":{"user":{"projectV2":null}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	_, err := p.ResolveProject("ghost", 9)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

const fieldsResponse = `{"data":{"node":{"fields":{"nodes":[
  {"id":"F_title","name":"Title"},
  {"id":"F_status","name":"Status","options":[
    {"id":"O_draft","name":"Draft"},
    {"id":"O_ticketed","name":"Ticketed"}
  ]},
  {}
]}}}}`

func TestResolveFields(t *testing.T) {
	runner := &fakeRunner{responses: []response{{output: fieldsResponse}}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	fields, err := p.ResolveFields("PVT_org")
	require.NoError(t, err)

	statusID, err := fields.FieldID("Status")
	require.NoError(t, err)
	assert.Equal(t, "F_status", statusID)

	optionID, err := fields.OptionID("Status", "Ticketed")
	require.NoError(t, err)
	assert.Equal(t, "O_ticketed", optionID)

	_, err = fields.FieldID("Lane")
	assert.ErrorIs(t, err, ErrFieldNotFound)
	_, err = fields.OptionID("Status", "Shipped")
	assert.ErrorIs(t, err, ErrOptionNotFound)
	_, err = fields.OptionID("Title", "anything")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestResolveFields_Memoized(t *testing.T) {
	runner := &fakeRunner{responses: []response{{output: fieldsResponse}}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	_, err := p.ResolveFields("PVT_org")
	require.NoError(t, err)
	_, err = p.ResolveFields("PVT_org")
	require.NoError(t, err)

	assert.Len(t, runner.calls, 1)
}

func TestUpsertItem(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{output: `{"data":{"addProjectV2ItemById":{"item":{"id":"PVTI_1"}}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	itemID, err := p.UpsertItem("PVT_org", "I_node")
	require.NoError(t, err)
	assert.Equal(t, "PVTI_1", itemID)
}

func TestUpsertItem_EmptyItem(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{output: `{"data":{"addProjectV2ItemById":{"item":{}}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	_, err := p.UpsertItem("PVT_org", "I_node")
	assert.ErrorIs(t, err, ErrGraphQL)
}

func TestSetSingleSelect(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{output: `{"data":{"updateProjectV2ItemFieldValue":{"projectV2Item":{"id":"PVTI_1"}}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	require.NoError(t, p.SetSingleSelect("PVT_org", "PVTI_1", "F_status", "O_ticketed"))
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "option=O_ticketed")
}

func TestSetText(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{output: `{"data":{"updateProjectV2ItemFieldValue":{"projectV2Item":{"id":"PVTI_1"}}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	require.NoError(t, p.SetText("PVT_org", "PVTI_1", "F_id", "U-004"))
	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "text=U-004")
}

func TestSetText_GraphQLError(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{err: errors.New("field does not exist")},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	err := p.SetText("PVT_org", "PVTI_1", "F_id", "U-004")
	assert.ErrorIs(t, err, ErrGraphQL)
}

func TestListItems_Pagination(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{output: `{"data":{"node":{"items":{
			"pageInfo":{"hasNextPage":true,"endCursor":"CUR"},
			"nodes":[
				{"id":"PVTI_1","content":{"number":42},"fieldValueByName":{"name":"Ticketed"}},
				{"id":"PVTI_draft","content":{},"fieldValueByName":{}}
			]}}}}`},
		{output: `{"data":{"node":{"items":{
			"pageInfo":{"hasNextPage":false,"endCursor":""},
			"nodes":[
				{"id":"PVTI_2","content":{"number":43},"fieldValueByName":{"name":"Merged"}}
			]}}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	items, err := p.ListItems("PVT_org")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 42, items[0].IssueNumber)
	assert.Equal(t, "Ticketed", items[0].Status)
	assert.Equal(t, "Merged", items[1].Status)
	assert.Len(t, runner.calls, 2)
}

func TestItemForIssue_NotFound(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{output: `{"data":{"node":{"items":{"pageInfo":{"hasNextPage":false},"nodes":[]}}}}`},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	_, err := p.ItemForIssue("PVT_org", 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestWaitForItem_RetriesUntilVisible(t *testing.T) {
	empty := `{"data":{"node":{"items":{"pageInfo":{"hasNextPage":false},"nodes":[]}}}}`
	found := `{"data":{"node":{"items":{"pageInfo":{"hasNextPage":false},"nodes":[
		{"id":"PVTI_1","content":{"number":42},"fieldValueByName":{"name":"Ticketed"}}
	]}}}}`
	runner := &fakeRunner{responses: []response{
		{output: empty},
		{output: found},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	item, err := p.WaitForItem("PVT_org", 42)
	require.NoError(t, err)
	assert.Equal(t, "PVTI_1", item.ID)
	assert.Len(t, runner.calls, 2)
}

func TestWaitForItem_PermanentError(t *testing.T) {
	runner := &fakeRunner{responses: []response{
		{err: fmt.Errorf("%w: boom", ErrGraphQL)},
	}}
	p := newTestProjects(runner, logger.NewNoopLogger())

	_, err := p.WaitForItem("PVT_org", 42)
	assert.ErrorIs(t, err, ErrGraphQL)
	assert.Len(t, runner.calls, 1)
}
