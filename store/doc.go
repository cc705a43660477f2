// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists questions and choices and records votes.

	st := store.New(conn)

# Reading

	latest, err := st.ListLatest(ctx, now, 5)  // index page
	q, err := st.GetQuestion(ctx, id)          // detail and results

ListLatest runs an ordered range query on pub_date and runs the rows
through models.FilterListing before returning. GetQuestion applies no
visibility rule; callers decide with q.IsAccessibleDetail(now).

# Voting

	votes, err := st.RecordVote(ctx, questionID, &choiceID)

The counter is incremented by one UPDATE statement in the database:

	UPDATE choice SET votes = votes + 1 WHERE id = $1 AND question_id = $2

RecordVote is not idempotent. Callers prevent duplicate submission with
redirect-after-post.

# Errors

  - ErrQuestionNotFound: no question with that ID
  - ErrChoiceNotSelected: RecordVote called without a choice
  - ErrChoiceNotFound: choice missing or owned by another question

Database failures are wrapped with %w.
*/
package store
