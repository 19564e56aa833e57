// Command beatsync aligns click-driven animation beats and voiceover
// segments to subtitle transcripts.
//
// The align subcommand times one file's beats against one SRT transcript;
// the project subcommands persist multi-file projects and their segment
// timings in a local SQLite store. Browser-side beat detection and video
// encoding live outside this tool: beats and segments arrive as JSON files,
// and timings leave as tables or JSON.
package main
