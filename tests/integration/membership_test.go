package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"github.com/davideoddi/usergroups-api/internal/domain/user"
	"github.com/stretchr/testify/require"
)

// TestMembershipFlow associates a user with a group and checks that the
// association is visible from both sides, then removes it again.
func TestMembershipFlow(t *testing.T) {
	userID := createUserForTests(t, "Marta", "Rossi", "1992-03-04", "female")
	groupID := createGroupForTests(t, "editors")

	// 1 Associate
	doRequest(t, "POST", "/users/group", map[string]any{
		"user_id":  userID,
		"group_id": groupID,
	}, http.StatusCreated)

	// 2 Visible from the group side
	resp := doRequest(t, "GET", fmt.Sprintf("/users/group/%d", groupID), nil, http.StatusOK)

	var members []user.UserDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &members))
	require.Len(t, members, 1)
	require.Equal(t, userID, members[0].ID)
	require.Equal(t, "Marta", members[0].Name)

	// 3 Visible from the user side
	resp = doRequest(t, "GET", fmt.Sprintf("/groups/user/%d", userID), nil, http.StatusOK)

	var groups []group.GroupDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &groups))
	require.Len(t, groups, 1)
	require.Equal(t, groupID, groups[0].ID)

	// 4 Remove the association
	resp = doRequest(t, "DELETE", fmt.Sprintf("/users/%d/groups/%d", userID, groupID), nil, http.StatusNoContent)
	require.Empty(t, resp.Body.String())

	// 5 Both sides are empty again
	resp = doRequest(t, "GET", fmt.Sprintf("/users/group/%d", groupID), nil, http.StatusOK)
	require.JSONEq(t, `[]`, resp.Body.String())

	resp = doRequest(t, "GET", fmt.Sprintf("/groups/user/%d", userID), nil, http.StatusOK)
	require.JSONEq(t, `[]`, resp.Body.String())
}

// The association body binds with camelCase keys as well.
func TestMembershipAcceptsCamelCaseKeys(t *testing.T) {
	userID := createUserForTests(t, "Elena", "Gallo", "1993-07-07", "female")
	groupID := createGroupForTests(t, "designers")

	doRequest(t, "POST", "/users/group", map[string]any{
		"userId":  userID,
		"groupId": groupID,
	}, http.StatusCreated)

	resp := doRequest(t, "GET", fmt.Sprintf("/users/group/%d", groupID), nil, http.StatusOK)

	var members []user.UserDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &members))
	require.Len(t, members, 1)
	require.Equal(t, userID, members[0].ID)
}

// The join table's foreign keys reject rows pointing at ids that do not
// exist.
func TestMembershipRejectsDanglingRows(t *testing.T) {
	resp := doRequest(t, "POST", "/users/group", map[string]any{
		"user_id":  999999,
		"group_id": 999999,
	}, http.StatusInternalServerError)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "Internal Server Error", body.Error)
}

// Removing an association that never existed still responds 204.
func TestMembershipRemovalIsIdempotent(t *testing.T) {
	userID := createUserForTests(t, "Luca", "Bianchi", "1988-08-08", "male")
	groupID := createGroupForTests(t, "reviewers")

	doRequest(t, "DELETE", fmt.Sprintf("/users/%d/groups/%d", userID, groupID), nil, http.StatusNoContent)
	doRequest(t, "DELETE", fmt.Sprintf("/users/%d/groups/%d", userID, groupID), nil, http.StatusNoContent)
}

// Deleting a user takes its membership rows along.
func TestDeletingUserCascadesMemberships(t *testing.T) {
	userID := createUserForTests(t, "Anna", "Verdi", "1995-12-12", "female")
	groupID := createGroupForTests(t, "writers")

	doRequest(t, "POST", "/users/group", map[string]any{
		"user_id":  userID,
		"group_id": groupID,
	}, http.StatusCreated)

	doRequest(t, "DELETE", fmt.Sprintf("/users/%d", userID), nil, http.StatusOK)

	resp := doRequest(t, "GET", fmt.Sprintf("/users/group/%d", groupID), nil, http.StatusOK)
	require.JSONEq(t, `[]`, resp.Body.String())
}

// Deleting a group takes its membership rows along too.
func TestDeletingGroupCascadesMemberships(t *testing.T) {
	userID := createUserForTests(t, "Paolo", "Neri", "1991-06-06", "male")
	groupID := createGroupForTests(t, "maintainers")

	doRequest(t, "POST", "/users/group", map[string]any{
		"user_id":  userID,
		"group_id": groupID,
	}, http.StatusCreated)

	doRequest(t, "DELETE", fmt.Sprintf("/groups/%d", groupID), nil, http.StatusOK)

	resp := doRequest(t, "GET", fmt.Sprintf("/groups/user/%d", userID), nil, http.StatusOK)
	require.JSONEq(t, `[]`, resp.Body.String())
}
