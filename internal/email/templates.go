package email

import "fmt"

func renderSwapRequested(requesterName, skillOffered, skillWanted string) string {
	return fmt.Sprintf(
		"%s wants to swap skills with you: they offer %q and would like to learn %q from you.\n\n"+
			"Open SkillSwap to accept or reject the request.\n",
		requesterName, skillOffered, skillWanted,
	)
}

func renderSwapDecided(providerName, skillWanted string, accepted bool) string {
	if accepted {
		return fmt.Sprintf(
			"%s accepted your swap request for %q. You can now arrange your sessions.\n",
			providerName, skillWanted,
		)
	}
	return fmt.Sprintf(
		"%s rejected your swap request for %q.\n",
		providerName, skillWanted,
	)
}
