package catalog

// fade is a data-table shorthand.
func fade(start, duration float64) *Fade {
	return &Fade{Start: start, Duration: duration}
}

// Album returns the Chrono Ark soundtrack definition.
//
// Track titles follow the official album listings where they exist
// (the Selector bandcamp release and the Cosmograph soundcloud set).
// Aliases, intro/loop names, pass counts, and fade windows describe how
// the game's shipped audio clips map onto those tracks.
func Album() []Entry {
	return []Entry{
		{Number: 1, Title: "Chrono Ark Intro Theme", Aliases: []string{"choronoArk_intro"}},
		{Number: 2, Title: "Title Screen Theme", Aliases: []string{"Main"}},
		{Number: 3, Title: "Ark", Artist: "Cosmograph", Role: RoleLoopPair,
			Aliases: []string{"bangjoo"}, FadeOut: fade(40, 6.5)},
		{Number: 4, Title: "Misty Garden 1 Field Theme", Aliases: []string{"CA_Field01_2"},
			Passes: 2, FadeOut: fade(56, 8), Gap: 1},
		{Number: 5, Title: "Misty Garden 1 Battle Theme", Aliases: []string{"CA_Battle01"},
			Passes: 2, FadeOut: fade(60, 5), Gap: 1},
		{Number: 6, Title: "Misty Garden 1 Boss Theme", Aliases: []string{"CA_Boss01"},
			FadeOut: fade(113, 10), Gap: 1},
		{Number: 7, Title: "Chrono Ark Normal Theme", Aliases: []string{"chronoArk_normal"},
			Passes: 2, FadeOut: fade(55, 5), Gap: 1},
		{Number: 8, Title: "Mysterious Forest (Misty Garden 2 Field Theme)", Role: RoleLoopPair,
			Aliases: []string{"Mysterious Forest"}, FadeOut: fade(96, 6), Gap: 1},
		{Number: 9, Title: "Crush & Contort (Misty Garden 2 Battle Theme)", Role: RoleLoopPair,
			Aliases: []string{"Crush & Contort"}, FadeOut: fade(92, 6), Gap: 1},
		{Number: 10, Title: "Hope for Existence (The Witch's Theme)", Artist: "Cosmograph", Role: RoleLoopPair,
			Aliases: []string{"Hope for Existence"}, FadeOut: fade(-10, 10), Gap: 1},
		{Number: 11, Title: "Shiranui Battle Theme", Artist: "Hox2 (Studio EIM)",
			Aliases: []string{"Shiranui_Battle"}, Passes: 2, FadeOut: fade(76, 11), Gap: 1},
		{Number: 12, Title: "Encounter Dorchi", Artist: "Cosmograph",
			Aliases: []string{"SirDorchi"}, Passes: 2, FadeOut: fade(97, 4.8), Gap: 1},
		{Number: 13, Title: "Place of Void (Bloody Park 1 Field Theme)", Artist: "Selector",
			Aliases: []string{"CA_Field02"}, FadeOut: fade(145, 5), Gap: 1},
		{Number: 14, Title: "After Revive (Bloody Park 1 Battle Theme)", Artist: "Selector",
			Aliases: []string{"CA_Battle02"}, FadeOut: fade(149, 5), Gap: 1},
		{Number: 15, Title: "Final March of Broken Toys (Bloody Park Boss Theme)",
			Aliases: []string{"CA_Boss02"}, FadeOut: fade(110, 5), Gap: 1},
		// The author also writes this one as "Show Time" on the bandcamp page.
		{Number: 16, Title: "Show Time (The Joker's Theme)", Artist: "Selector", Role: RoleLoopPair,
			Aliases: []string{"Show Time"}, FadeOut: fade(-6, 5), Gap: 1},
		{Number: 17, Title: "The Phenomenon (Bloody Park 2 Field Theme)", Role: RoleLoopPair,
			Aliases: []string{"The Phenomenon"}, FadeOut: fade(-5, 5), Gap: 1},
		{Number: 18, Title: "Obstructor (Bloody Park 2 Battle Theme)", Artist: "Selector", Role: RoleLoopPair,
			Aliases: []string{"Obstructor"}, FadeOut: fade(-5, 5), Gap: 1},
		{Number: 19, Title: "White Grave Field Theme",
			Aliases: []string{"CA_Field03"}, FadeOut: fade(-6, 4), Gap: 1},
		{Number: 20, Title: "White Grave Battle Theme",
			Aliases: []string{"CA_Battle03"}, FadeOut: fade(-5, 5), Gap: 1},
		{Number: 21, Title: "Near the End (White Grave Boss Theme)", Role: RoleLoopPair,
			Aliases: []string{"CA_Boss03"}, FadeOut: fade(-6, 5.25), Gap: 1},
		{Number: 22, Title: "Sanctuary", Artist: "Selector", Role: RoleLoopPair,
			FadeOut: fade(-6.5, 5), Gap: 1},
		{Number: 23, Title: "Anxiety", Role: RoleLoopPair,
			FadeOut: fade(-10.5, 7.25), Gap: 1},
		{Number: 24, Title: "End Of Light", Artist: "Cosmograph", Role: RoleLoopPair,
			FadeOut: fade(-13, 10), Gap: 1},
		{Number: 25, Title: "Challenge (Early Access Azar Boss Theme)",
			Aliases: []string{"Challenge"}, FadeOut: fade(-7, 5), Gap: 1},
		{Number: 26, Title: "Glitchy Chrono Ark Intro Theme",
			Aliases: []string{"ChagedIntro"}, Gap: 1},
		{Number: 27, Title: "Chrono Ark Ex", Aliases: []string{"choronoArk_ex"}},
		{Number: 28, Title: "Restart", Role: RoleLoopPair,
			LoopName: "ReStart", Passes: 2, FadeOut: fade(-10, 8)},
		{Number: 29, Title: "Crimson Wilds",
			Aliases: []string{"RW_field"}, FadeOut: fade(-9, 9), Gap: 1},
		{Number: 30, Title: "Crimson Wilds Battle Theme",
			Aliases: []string{"RW_battle"}, FadeOut: fade(110, 13.25), Gap: 1},
		{Number: 31, Title: "Crimson Wilds Boss Theme", Role: RoleLoopPair,
			Aliases: []string{"RW_boss"}, LoopName: "RW_boss", FadeOut: fade(-8, 7), Gap: 1},
		{Number: 32, Title: "Azar Boss Theme Phase 1", Role: RoleLoopPair,
			Passes: 2, FadeOut: fade(-5, 5), Gap: 1},
		{Number: 33, Title: "Azar Boss Theme Phase 2 (feat. FiNE)", Artist: "Lee Dong Hoon (Studio EIM)",
			Aliases: []string{"Azar_Boss_Theme_Phase2_(Intro)"}, FadeOut: fade(-12, 9),
			Volume: 0.7, LyricsFile: "azar-boss-theme-2-lyrics.txt", Gap: 1},
		{Number: 34, Title: "Program Master Boss Theme Phase 1", Artist: "Rindaman (Studio EIM)",
			Role: RoleLoopPair, FadeOut: fade(-6, 5), Gap: 1},
		{Number: 35, Title: "Program Master Boss Theme Phase 2", Artist: "Rindaman (Studio EIM)",
			Role: RoleLoopPair, FadeOut: fade(-10, 8), Gap: 1},
		{Number: 36, Title: "Memory Lane", FadeOut: fade(-8, 8), Gap: 1},
		{Number: 37, Title: "Clock Tower Theme",
			Aliases: []string{"ClockTower"}, Passes: 2, FadeOut: fade(-8, 6), Gap: 1},
		{Number: 38, Title: "Ark System", Role: RoleLoopPair,
			IntroName: "ArkSystemBootUp", LoopName: "ArkSystemAmbiLoop",
			Passes: 2, FadeIn: fade(0, 2), FadeOut: fade(-5, 5), Gap: 1},
		{Number: 39, Title: "Infinity", Aliases: []string{"InfinityLoop"}, Gap: 1},
		{Number: 40, Title: "Opposition", Passes: 2, FadeOut: fade(-8, 5.5), Gap: 1},
		{Number: 41, Title: "Dystopia", Role: RoleLoopPair, FadeOut: fade(-6, 5), Gap: 1},
		{Number: 42, Title: "Ark Sight", Passes: 2, FadeOut: fade(-15, 8)},
		{Number: 43, Title: "Clone", Passes: 2, FadeOut: fade(-8, 6.5), Gap: 1},
		{Number: 44, Title: "Broken World", Artist: "Cosmograph",
			Aliases: []string{"DeeperDeeper"}, Passes: 2, FadeOut: fade(-5, 5), Gap: 1},
		{Number: 45, Title: "Everything Meaning", Artist: "Rindaman (Studio EIM)"},
		{Number: 46, Title: "It's Time to Choose", Role: RoleLoopPair,
			IntroName: "It's Time to Choose loop", LoopName: "It's Time to Choose climax"},
		{Number: 47, Title: "Outbreak", Aliases: []string{"OutBreak"},
			Passes: 2, FadeOut: fade(-10, 6), Gap: 1},
		{Number: 48, Title: "Abyss", Aliases: []string{"Story_3_Abyss_loop"},
			Passes: 2, FadeOut: fade(10, 7), Gap: 1},
		// The sharp zero-duration fade trims excess trailing silence.
		{Number: 49, Title: "Story Background Music", Aliases: []string{"StoryBGM_2"},
			Passes: 2, FadeOut: fade(-3, 0)},
		{Number: 50, Title: "Serious Story Background Music", Aliases: []string{"StoryBGM_serious"},
			Passes: 2, FadeOut: fade(-8, 6), Gap: 1},
		{Number: 51, Title: "The Legendary Phoenix", Artist: "Cosmograph",
			Aliases: []string{"pheonix_theme"}, Passes: 2, FadeOut: fade(-7, 7), Gap: 1},
		{Number: 52, Title: "There's No Way", Role: RoleLoopPair,
			IntroName: "Theres No Way loop_Intro", LoopName: "Theres No Way loop",
			FadeOut: fade(-5, 5), Gap: 1},
		{Number: 53, Title: "Virtual Emotions", Passes: 2, FadeOut: fade(-10, 7.5), Gap: 1},
		{Number: 54, Title: "Wrong Beginning", Artist: "Selector", Role: RoleLoopPair,
			FadeOut: fade(-10, 7.7)},
		{Number: 55, Title: "End Credits Background Music", Artist: "KuaNu (Studio EIM)",
			Aliases: []string{"TrueEndCredit_BGM"}},
	}
}
