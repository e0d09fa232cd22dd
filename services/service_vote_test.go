package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"ziffy_backend/model"
)

func TestDecideVote(t *testing.T) {
	voters := []model.Voter{
		{Email: "a@example.com", Vote: VoteUp},
		{Email: "b@example.com", Vote: VoteDown},
	}

	cases := []struct {
		name      string
		email     string
		direction string
		want      voteCase
	}{
		{"first vote", "c@example.com", VoteUp, voteNew},
		{"repeat up", "a@example.com", VoteUp, voteRepeat},
		{"switch up to down", "a@example.com", VoteDown, voteSwitch},
		{"repeat down", "b@example.com", VoteDown, voteRepeat},
		{"switch down to up", "b@example.com", VoteUp, voteSwitch},
		{"empty voter list", "a@example.com", VoteUp, voteNew},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs := voters
			if tc.name == "empty voter list" {
				vs = nil
			}
			if got := decideVote(vs, tc.email, tc.direction); got != tc.want {
				t.Fatalf("decideVote = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVoteFilterRestatesPrecondition(t *testing.T) {
	id := bson.NewObjectID()

	newFilter := voteFilter(id, voteNew, "a@example.com", VoteUp)
	ne, ok := newFilter["voters.email"].(bson.M)
	if !ok || ne["$ne"] != "a@example.com" {
		t.Fatalf("voteNew filter must require the voter absent, got %v", newFilter)
	}

	switchFilter := voteFilter(id, voteSwitch, "a@example.com", VoteUp)
	em, ok := switchFilter["voters"].(bson.M)
	if !ok {
		t.Fatalf("voteSwitch filter must match the standing entry, got %v", switchFilter)
	}
	match := em["$elemMatch"].(bson.M)
	if match["email"] != "a@example.com" || match["vote"] != VoteDown {
		t.Fatalf("voteSwitch must require the opposite standing direction, got %v", match)
	}
}

// applyLocally mirrors the store's semantics for exactly the filter and
// update shapes the engine emits, so vote sequences can be exercised
// without a live deployment. Returns false when the filter matches
// nothing, like MatchedCount == 0.
func applyLocally(t *testing.T, post *model.Post, filter, update bson.M) bool {
	t.Helper()

	matchedIdx := -1
	if cond, ok := filter["voters.email"].(bson.M); ok {
		email := cond["$ne"].(string)
		for _, v := range post.Voters {
			if v.Email == email {
				return false
			}
		}
	}
	if cond, ok := filter["voters"].(bson.M); ok {
		match := cond["$elemMatch"].(bson.M)
		for i, v := range post.Voters {
			if v.Email == match["email"] && v.Vote == match["vote"] {
				matchedIdx = i
				break
			}
		}
		if matchedIdx == -1 {
			return false
		}
	}

	if inc, ok := update["$inc"].(bson.M); ok {
		for field, delta := range inc {
			switch field {
			case "upVote":
				post.UpVote += delta.(int)
			case "downVote":
				post.DownVote += delta.(int)
			default:
				t.Fatalf("unexpected $inc field %q", field)
			}
		}
	}
	if push, ok := update["$push"].(bson.M); ok {
		post.Voters = append(post.Voters, push["voters"].(model.Voter))
	}
	if set, ok := update["$set"].(bson.M); ok {
		if matchedIdx == -1 {
			t.Fatalf("positional $set without a matched element")
		}
		post.Voters[matchedIdx].Vote = set["voters.$.vote"].(string)
	}
	return true
}

func vote(t *testing.T, post *model.Post, email, direction string) voteCase {
	t.Helper()
	decision := decideVote(post.Voters, email, direction)
	if decision == voteRepeat {
		return decision
	}
	if !applyLocally(t, post, voteFilter(post.ID, decision, email, direction), voteUpdate(decision, email, direction)) {
		t.Fatalf("conditional update matched nothing for %s/%s", email, direction)
	}
	post.TotalVote = post.UpVote - post.DownVote
	return decision
}

func checkInvariants(t *testing.T, post *model.Post) {
	t.Helper()
	ups, downs := 0, 0
	seen := map[string]bool{}
	for _, v := range post.Voters {
		if seen[v.Email] {
			t.Fatalf("voter %s appears more than once", v.Email)
		}
		seen[v.Email] = true
		switch v.Vote {
		case VoteUp:
			ups++
		case VoteDown:
			downs++
		default:
			t.Fatalf("voter %s has direction %q", v.Email, v.Vote)
		}
	}
	if post.UpVote != ups || post.DownVote != downs {
		t.Fatalf("counters {%d,%d} disagree with voter list {%d,%d}", post.UpVote, post.DownVote, ups, downs)
	}
	if post.TotalVote != post.UpVote-post.DownVote {
		t.Fatalf("totalVote %d != upVote %d - downVote %d", post.TotalVote, post.UpVote, post.DownVote)
	}
}

func TestVoteScenarioSingleVoter(t *testing.T) {
	post := &model.Post{ID: bson.NewObjectID()}

	if c := vote(t, post, "a@example.com", VoteUp); c != voteNew {
		t.Fatalf("expected first vote to be voteNew, got %v", c)
	}
	checkInvariants(t, post)
	if post.UpVote != 1 || post.DownVote != 0 || post.TotalVote != 1 {
		t.Fatalf("after up: %+v", post)
	}

	if c := vote(t, post, "a@example.com", VoteDown); c != voteSwitch {
		t.Fatalf("expected switch, got %v", c)
	}
	checkInvariants(t, post)
	if post.UpVote != 0 || post.DownVote != 1 || post.TotalVote != -1 {
		t.Fatalf("after switch: %+v", post)
	}

	before := *post
	if c := vote(t, post, "a@example.com", VoteDown); c != voteRepeat {
		t.Fatalf("expected repeat to be a no-op outcome, got %v", c)
	}
	checkInvariants(t, post)
	if post.UpVote != before.UpVote || post.DownVote != before.DownVote || len(post.Voters) != len(before.Voters) {
		t.Fatalf("repeat vote changed state: %+v -> %+v", before, post)
	}
}

func TestSwitchMovesExactlyOneUnit(t *testing.T) {
	post := &model.Post{ID: bson.NewObjectID()}
	vote(t, post, "a@example.com", VoteUp)
	vote(t, post, "b@example.com", VoteUp)
	vote(t, post, "c@example.com", VoteDown)
	checkInvariants(t, post)

	sumBefore := post.UpVote + post.DownVote
	vote(t, post, "b@example.com", VoteDown)
	checkInvariants(t, post)

	if post.UpVote+post.DownVote != sumBefore {
		t.Fatalf("switch changed the counter sum: %d -> %d", sumBefore, post.UpVote+post.DownVote)
	}
	if post.UpVote != 1 || post.DownVote != 2 || post.TotalVote != -1 {
		t.Fatalf("after switch: %+v", post)
	}
}

func TestVoteSequenceInvariantsHold(t *testing.T) {
	post := &model.Post{ID: bson.NewObjectID()}
	seq := []struct{ email, dir string }{
		{"a@example.com", VoteUp},
		{"b@example.com", VoteDown},
		{"a@example.com", VoteUp},   // repeat
		{"b@example.com", VoteUp},   // switch
		{"c@example.com", VoteUp},
		{"c@example.com", VoteDown}, // switch
		{"a@example.com", VoteDown}, // switch
		{"d@example.com", VoteDown},
		{"d@example.com", VoteDown}, // repeat
	}
	for _, s := range seq {
		vote(t, post, s.email, s.dir)
		checkInvariants(t, post)
	}
	if len(post.Voters) != 4 {
		t.Fatalf("expected 4 voters, got %d", len(post.Voters))
	}
	if post.UpVote != 1 || post.DownVote != 3 || post.TotalVote != -2 {
		t.Fatalf("final state: %+v", post)
	}
}

func TestStaleDecisionMatchesNothing(t *testing.T) {
	// A decision made against stale state must not apply: the conditional
	// filter is the guard.
	post := &model.Post{ID: bson.NewObjectID()}
	vote(t, post, "a@example.com", VoteUp)

	// decision computed before the voter existed
	filter := voteFilter(post.ID, voteNew, "a@example.com", VoteUp)
	update := voteUpdate(voteNew, "a@example.com", VoteUp)
	if applyLocally(t, post, filter, update) {
		t.Fatalf("stale voteNew applied over an existing entry")
	}

	// switch decision whose standing direction has since changed
	filter = voteFilter(post.ID, voteSwitch, "a@example.com", VoteUp)
	update = voteUpdate(voteSwitch, "a@example.com", VoteUp)
	if applyLocally(t, post, filter, update) {
		t.Fatalf("stale voteSwitch applied without the opposite standing vote")
	}
	checkInvariants(t, post)
}
