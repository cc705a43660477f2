// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/testutil"
)

// TestFullVotingWorkflow drives the site through the router: the admin
// publishes a question, a visitor finds it, votes and reads the results.
func TestFullVotingWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg)
	adminHeaders := map[string]string{"X-Admin-Key": cfg.AdminKey}

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	// Step 1: empty site
	w := serve(httptest.NewRequest("GET", "/polls/", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "No polls are available.")

	// Step 2: admin creates a question published an hour ago
	pubDate := time.Now().Add(-time.Hour)
	w = serve(testutil.MakeRequest("POST", "/admin/questions",
		models.CreateQuestionRequest{Text: "What's up?", PubDate: &pubDate}, adminHeaders))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var created models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &created)
	questionPath := "/polls/" + strconv.FormatInt(created.QuestionID, 10) + "/"

	// Step 3: without choices it stays off the index, but the page resolves
	w = serve(httptest.NewRequest("GET", "/polls/", nil))
	testutil.AssertContains(t, w, "No polls are available.")
	w = serve(httptest.NewRequest("GET", questionPath, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 4: admin adds two choices
	choiceIDs := make([]int64, 0, 2)
	for _, text := range []string{"Not much", "The sky"} {
		w = serve(testutil.MakeRequest("POST",
			"/admin/questions/"+strconv.FormatInt(created.QuestionID, 10)+"/choices",
			models.AddChoiceRequest{Text: text}, adminHeaders))
		testutil.AssertStatus(t, w, http.StatusCreated)
		var added models.AddChoiceResponse
		testutil.AssertJSON(t, w, &added)
		choiceIDs = append(choiceIDs, added.ChoiceID)
	}

	// Step 5: the question is now listed
	w = serve(httptest.NewRequest("GET", "/polls/", nil))
	testutil.AssertContains(t, w, `href="`+questionPath+`"`)
	testutil.AssertContains(t, w, "1 hour ago")

	// Step 6: voting without a choice redisplays the form
	w = serve(testutil.MakeFormRequest("POST", questionPath+"vote/", url.Values{}))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "You didn&#39;t select a choice.")

	// Step 7: a real vote redirects to the results
	w = serve(testutil.MakeFormRequest("POST", questionPath+"vote/",
		url.Values{"choice": {strconv.FormatInt(choiceIDs[1], 10)}}))
	testutil.AssertStatus(t, w, http.StatusFound)
	resultsPath := w.Header().Get("Location")
	if resultsPath != questionPath+"results/" {
		t.Fatalf("Expected redirect to %sresults/, got %s", questionPath, resultsPath)
	}

	// Step 8: results show the counts
	w = serve(httptest.NewRequest("GET", resultsPath, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Not much -- 0 votes")
	testutil.AssertContains(t, w, "The sky -- 1 vote<")

	// Step 9: the admin view agrees
	w = serve(testutil.MakeRequest("GET", "/admin/questions/"+strconv.FormatInt(created.QuestionID, 10), nil, adminHeaders))
	testutil.AssertStatus(t, w, http.StatusOK)
	var q models.Question
	testutil.AssertJSON(t, w, &q)
	if len(q.Choices) != 2 || q.Choices[1].Votes != 1 || q.Choices[0].Votes != 0 {
		t.Errorf("Unexpected counts from admin view: %+v", q.Choices)
	}
}

func TestScheduledQuestionHiddenUntilPublished(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg)

	questionID, choiceID := testutil.CreateTestQuestionAndChoice(t, db, "Coming soon", 30, "")
	questionPath := "/polls/" + strconv.FormatInt(questionID, 10) + "/"

	for _, path := range []string{questionPath, questionPath + "results/"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest("POST", questionPath+"vote/",
		url.Values{"choice": {strconv.FormatInt(choiceID, 10)}}))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	if votes := testutil.GetVotes(t, db, choiceID); votes != 0 {
		t.Errorf("Expected no votes on unpublished question, got %d", votes)
	}
}
